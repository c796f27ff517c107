package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cropcast/pkg/state"
)

func (a *app) recommendCmd() *cobra.Command {
	var retries int
	cmd := &cobra.Command{
		Use:   "recommend FIELD_ID",
		Short: "Ask for crop suggestions for a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			field, err := a.api.GetField(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			panel := state.NewRecommendationPanel(a.api)
			reqErr := panel.Request(cmd.Context(), *field)
			for i := 0; reqErr != nil && i < retries; i++ {
				fmt.Fprintln(w, errStyle.Render(panel.State().Error))
				fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("Retrying (%d/%d)...", i+1, retries)))
				reqErr = panel.Retry(cmd.Context())
			}

			st := panel.State()
			if st.Error != "" {
				fmt.Fprintln(w, errStyle.Render(st.Error))
				return reqErr
			}
			printTitle(w, fmt.Sprintf("Suggestions for %s (%s soil)", field.FieldName, field.SoilType))
			rows := make([][]string, 0, len(st.Items))
			for _, r := range st.Items {
				rows = append(rows, []string{r.Crop, strconv.Itoa(r.Suitability) + "%",
					r.Factors.Soil, r.Factors.Climate, r.Factors.Rotation, r.Factors.Water})
			}
			printTable(w, []string{"CROP", "FIT", "SOIL", "CLIMATE", "ROTATION", "WATER"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&retries, "retry", 0, "repeat a failed request up to N times")
	return cmd
}

func (a *app) chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [MESSAGE]",
		Short: "Talk to the farming assistant; without a message starts a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			tr := state.NewChatTranscript(a.api)
			w := cmd.OutOrStdout()

			if len(args) > 0 {
				err := tr.Send(cmd.Context(), strings.Join(args, " "))
				if errors.Is(err, state.ErrEmptyMessage) {
					return err
				}
				printEntry(w, last(tr.Entries()))
				return err
			}

			if err := tr.Load(cmd.Context()); err != nil {
				return err
			}
			for _, e := range tr.Entries() {
				printEntry(w, e)
			}
			fmt.Fprintln(w, mutedStyle.Render("Type a question, or \"exit\" to quit."))
			return chatLoop(cmd, tr, w)
		},
	}
}

func chatLoop(cmd *cobra.Command, tr *state.ChatTranscript, w io.Writer) error {
	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(w, "> ")
		if !sc.Scan() {
			fmt.Fprintln(w)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := tr.Send(cmd.Context(), line); errors.Is(err, state.ErrEmptyMessage) {
			continue
		}
		printEntry(w, last(tr.Entries()))
		if cmd.Context().Err() != nil {
			return cmd.Context().Err()
		}
	}
}

func last(entries []state.Entry) state.Entry {
	if len(entries) == 0 {
		return state.Entry{}
	}
	return entries[len(entries)-1]
}

func printEntry(w io.Writer, e state.Entry) {
	switch {
	case e.Role == state.RoleUser:
		fmt.Fprintln(w, mutedStyle.Render("you: ")+e.Text)
	case e.Failed:
		fmt.Fprintln(w, errStyle.Render(e.Text))
	default:
		fmt.Fprintln(w, titleStyle.Render("cropcast: ")+e.Text)
	}
}

func (a *app) weatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather [LOCATION]",
		Short: "Weather card for a location, the active farm's by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := strings.Join(args, " ")
			if loc == "" {
				f, err := a.activeFarm(cmd.Context())
				if err != nil {
					return err
				}
				if f.Location == "" {
					return fmt.Errorf("farm %s has no location; pass one", f.Name)
				}
				loc = f.Location
			} else if err := a.requireLogin(); err != nil {
				return err
			}
			s, err := a.api.Weather(cmd.Context(), loc)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, s.Location)
			fmt.Fprintf(w, "%s, %d°C, humidity %d%%, wind %d km/h\n", s.Condition, s.Temperature, s.Humidity, s.WindSpeed)
			return nil
		},
	}
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Overview of the active farm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			farmID := ""
			f, err := a.activeFarm(cmd.Context())
			switch {
			case err == nil:
				farmID = f.ID
			case !errors.Is(err, errNoFarm):
				return err
			}
			d, err := a.api.Dashboard(cmd.Context(), farmID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			name := a.cfg.Email
			if d.Profile != nil && d.Profile.FullName != "" {
				name = d.Profile.FullName
			}
			printTitle(w, "Welcome back, "+name)
			if d.Farm != nil {
				fmt.Fprintf(w, "Farm: %s (%s)\n", d.Farm.Name, orDash(d.Farm.Location))
			}
			if d.Weather != nil {
				fmt.Fprintf(w, "Weather: %s, %d°C\n", d.Weather.Condition, d.Weather.Temperature)
			}
			for _, c := range d.RecentCrops {
				fmt.Fprintf(w, "Crop: %s [%s]\n", c.CropType, c.CurrentStage)
			}
			for _, adv := range d.Advisories {
				fmt.Fprintf(w, "Tip: %s\n", adv.Title)
			}
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the active farm as an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.activeFarm(cmd.Context())
			if err != nil {
				return err
			}
			b, name, err := a.api.ExportFarm(cmd.Context(), f.ID)
			if err != nil {
				return err
			}
			if out == "" {
				out = name
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: name suggested by the server)")
	return cmd
}
