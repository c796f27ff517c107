package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cropcast/entities"
	reminder "cropcast/pkg/reminder/service"
	"cropcast/pkg/state"
)

// farmScoped loads a list for the active farm and waits for the first fetch.
func farmScoped[T any](ctx context.Context, a *app, fetch state.Fetch[T]) (*state.ListLoader[T], func()) {
	l := state.NewListLoader(fetch)
	cancel := state.FollowFarm(ctx, a.farms, l)
	l.Wait()
	return l, cancel
}

func (a *app) fieldsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "fields", Short: "Fields of the active farm"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.activeFarm(cmd.Context()); err != nil {
				return err
			}
			l, cancel := farmScoped(cmd.Context(), a, a.api.ListFields)
			defer cancel()
			return printFields(cmd, l.State())
		},
	}

	var in entities.Field
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			farm, err := a.activeFarm(cmd.Context())
			if err != nil {
				return err
			}
			in.FieldName = args[0]
			l, cancel := farmScoped(cmd.Context(), a, a.api.ListFields)
			defer cancel()
			err = l.Mutate(cmd.Context(), func(ctx context.Context) error {
				_, err := a.api.CreateField(ctx, farm.ID, in)
				return err
			})
			if err != nil {
				return err
			}
			l.Wait()
			return printFields(cmd, l.State())
		},
	}
	add.Flags().StringVar(&in.SoilType, "soil", "", "soil type: "+strings.Join(entities.SoilTypes, ", "))
	add.Flags().StringVar(&in.FieldLocation, "location", "", "field location")
	add.Flags().Float64Var(&in.AreaSize, "area", 0, "area in acres")
	add.Flags().StringSliceVar(&in.PreviousCrops, "previous", nil, "previous crops, most recent first")
	_ = add.MarkFlagRequired("soil")

	cmd.AddCommand(list, add)
	return cmd
}

func printFields(cmd *cobra.Command, st state.ListState[entities.Field]) error {
	if st.Err != nil {
		return st.Err
	}
	rows := make([][]string, 0, len(st.Items))
	for _, f := range st.Items {
		rows = append(rows, []string{f.ID, f.FieldName, f.SoilType, orDash(f.FieldLocation),
			strconv.FormatFloat(f.AreaSize, 'f', -1, 64), orDash(strings.Join(f.PreviousCrops, ", "))})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "SOIL", "LOCATION", "AREA", "PREVIOUS"}, rows)
	return nil
}

func (a *app) cropsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "crops", Short: "Crops planned or planted on the active farm"}

	var limit int
	fetch := func(ctx context.Context, farmID string) ([]entities.Crop, error) {
		return a.api.ListCrops(ctx, farmID, limit)
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List crops, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.activeFarm(cmd.Context()); err != nil {
				return err
			}
			l, cancel := farmScoped(cmd.Context(), a, fetch)
			defer cancel()
			return printCrops(cmd, l.State())
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "show at most this many")

	var (
		in               entities.Crop
		stage            string
		planted, harvest string
	)
	add := &cobra.Command{
		Use:   "add TYPE",
		Short: "Add a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			farm, err := a.activeFarm(cmd.Context())
			if err != nil {
				return err
			}
			in.CropType = args[0]
			in.CurrentStage = entities.CropStage(stage)
			if planted != "" {
				in.PlantingDate = &planted
			}
			if harvest != "" {
				in.ExpectedHarvestDate = &harvest
			}
			c, err := a.api.CreateCrop(cmd.Context(), farm.ID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s), stage %s\n", c.CropType, c.ID, c.CurrentStage)
			return nil
		},
	}
	add.Flags().StringVar(&in.Variety, "variety", "", "variety")
	add.Flags().StringVar(&stage, "stage", "", "planning, planting, growing, flowering or harvesting")
	add.Flags().StringVar(&planted, "planted", "", "planting date YYYY-MM-DD")
	add.Flags().StringVar(&harvest, "harvest", "", "expected harvest date YYYY-MM-DD")

	cmd.AddCommand(list, add)
	return cmd
}

func printCrops(cmd *cobra.Command, st state.ListState[entities.Crop]) error {
	if st.Err != nil {
		return st.Err
	}
	rows := make([][]string, 0, len(st.Items))
	for _, c := range st.Items {
		rows = append(rows, []string{c.ID, c.CropType, orDash(c.Variety), string(c.CurrentStage),
			derefDate(c.PlantingDate), derefDate(c.ExpectedHarvestDate)})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "CROP", "VARIETY", "STAGE", "PLANTED", "HARVEST"}, rows)
	return nil
}

func (a *app) remindersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "reminders", Short: "Seasonal reminders"}

	load := func(ctx context.Context) (*state.ListLoader[reminder.ReminderView], func()) {
		l := state.NewListLoader(func(ctx context.Context, _ string) ([]reminder.ReminderView, error) {
			return a.api.ListReminders(ctx)
		})
		cancel := state.FollowIdentity(ctx, a.sessions, l)
		l.Wait()
		return l, cancel
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List reminders by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			l, cancel := load(cmd.Context())
			defer cancel()
			return printReminders(cmd, l.State())
		},
	}

	var in entities.Reminder
	add := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			in.Title = args[0]
			l, cancel := load(cmd.Context())
			defer cancel()
			if err := l.Mutate(cmd.Context(), func(ctx context.Context) error {
				_, err := a.api.CreateReminder(ctx, in)
				return err
			}); err != nil {
				return err
			}
			l.Wait()
			return printReminders(cmd, l.State())
		},
	}
	add.Flags().StringVar(&in.ReminderDate, "date", "", "date YYYY-MM-DD")
	add.Flags().StringVar(&in.Description, "description", "", "details")
	_ = add.MarkFlagRequired("date")

	var undo bool
	done := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a reminder completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			r, err := a.api.SetReminderCompleted(cmd.Context(), args[0], !undo)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: completed=%t\n", r.Title, r.IsCompleted)
			return nil
		},
	}
	done.Flags().BoolVar(&undo, "undo", false, "mark as not completed")

	cmd.AddCommand(list, add, done)
	return cmd
}

func printReminders(cmd *cobra.Command, st state.ListState[reminder.ReminderView]) error {
	if st.Err != nil {
		return st.Err
	}
	rows := make([][]string, 0, len(st.Items))
	for _, r := range st.Items {
		status := ""
		switch {
		case r.IsCompleted:
			status = "done"
		case r.PastDue:
			status = errStyle.Render("past due")
		}
		rows = append(rows, []string{r.ID, r.ReminderDate, r.Title, status})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "DATE", "TITLE", "STATUS"}, rows)
	return nil
}
