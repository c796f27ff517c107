package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cropcast/entities"
	"cropcast/pkg/state"
)

func (a *app) loginCmd() *cobra.Command {
	var email, name string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.api.DevLogin(cmd.Context(), email, name)
			if err != nil {
				return err
			}
			if res.User.ID != a.cfg.UserID {
				a.cfg.FarmID = ""
			}

			// a new sign-in replaces whatever session the config held
			a.sessions.SignOut()
			unbind := a.farms.Bind(cmd.Context(), a.sessions)
			defer unbind()
			if a.cfg.FarmID != "" {
				a.farms.Select(&entities.Farm{ID: a.cfg.FarmID})
			}
			a.sessions.SignIn(state.Session{Token: res.AccessToken, User: res.User})
			a.farms.Wait()

			a.cfg.Token = res.AccessToken
			a.cfg.UserID = res.User.ID
			a.cfg.Email = res.User.Email
			active := a.farms.Selected()
			if active != nil && active.Name != "" {
				a.cfg.FarmID = active.ID
			}
			if err := a.save(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Signed in as %s\n", res.User.Email)
			if active != nil && active.Name != "" {
				fmt.Fprintf(w, "Active farm: %s\n", active.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token and farm selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.sessions.SignOut()
			a.cfg.Token, a.cfg.UserID, a.cfg.Email, a.cfg.FarmID = "", "", "", ""
			if err := a.save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			p, err := a.api.Me(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, orDash(p.FullName))
			fmt.Fprintf(w, "email: %s\nid:    %s\n", p.Email, p.ID)
			return nil
		},
	}
}
