package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"cropcast/entities"
	"cropcast/logger"
	"cropcast/pkg/client"
	"cropcast/pkg/state"
)

var (
	errNotSignedIn = errors.New("not signed in; run `cropcast login` first")
	errNoFarm      = errors.New("no farms yet; add one with `cropcast farms add`")
)

type app struct {
	cfgPath string
	server  string
	verbose bool

	cfg      *cliConfig
	sessions *state.SessionStore
	api      *client.Client
	farms    *state.FarmRegistry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "cropcast",
		Short:        "Farm records, crop recommendations and an agronomy assistant",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", defaultConfigPath(), "client config file")
	root.PersistentFlags().StringVar(&a.server, "server", "", "API base URL (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.farmsCmd(),
		a.fieldsCmd(),
		a.cropsCmd(),
		a.remindersCmd(),
		a.recommendCmd(),
		a.chatCmd(),
		a.weatherCmd(),
		a.dashboardCmd(),
		a.exportCmd(),
	)
	return root
}

func (a *app) init() error {
	env := "production"
	if a.verbose {
		env = "development"
	}
	logger.Init(env)

	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	if a.server != "" {
		cfg.Server = a.server
	}
	a.cfg = cfg
	a.sessions = state.NewSessionStore()
	if cfg.Token != "" {
		a.sessions.SignIn(state.Session{
			Token: cfg.Token,
			User:  entities.Profile{ID: cfg.UserID, Email: cfg.Email},
		})
	}
	a.api = client.New(cfg.Server, a.sessions)
	a.farms = state.NewFarmRegistry(a.api)
	return nil
}

func (a *app) save() error { return a.cfg.save(a.cfgPath) }

func (a *app) requireLogin() error {
	if a.sessions.Current() == nil {
		return errNotSignedIn
	}
	return nil
}

// activeFarm returns the selected farm after a refresh.
func (a *app) activeFarm(ctx context.Context) (*entities.Farm, error) {
	if err := a.refreshFarms(ctx); err != nil {
		return nil, err
	}
	f := a.farms.Selected()
	if f == nil {
		return nil, errNoFarm
	}
	return f, nil
}
