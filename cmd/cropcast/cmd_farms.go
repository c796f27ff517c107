package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cropcast/entities"
)

// refreshFarms reloads the registry, restoring and then persisting the selection.
func (a *app) refreshFarms(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if a.cfg.FarmID != "" {
		a.farms.Select(&entities.Farm{ID: a.cfg.FarmID})
	}
	if err := a.farms.Refresh(ctx); err != nil {
		return err
	}
	id := ""
	if f := a.farms.Selected(); f != nil {
		id = f.ID
	}
	if id == a.cfg.FarmID {
		return nil
	}
	a.cfg.FarmID = id
	return a.save()
}

func (a *app) farmsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farms",
		Short: "List and manage farms",
	}
	cmd.AddCommand(a.farmsListCmd(), a.farmsAddCmd(), a.farmsSelectCmd(), a.farmsDeleteCmd())
	return cmd
}

func (a *app) printFarms(cmd *cobra.Command) {
	sel := ""
	if f := a.farms.Selected(); f != nil {
		sel = f.ID
	}
	rows := [][]string{}
	for _, f := range a.farms.Farms() {
		mark := ""
		if f.ID == sel {
			mark = "*"
		}
		rows = append(rows, []string{mark, f.ID, f.Name, orDash(f.Location), strconv.FormatFloat(f.AreaSize, 'f', -1, 64), orDash(f.SoilType)})
	}
	printTable(cmd.OutOrStdout(), []string{"", "ID", "NAME", "LOCATION", "AREA", "SOIL"}, rows)
}

func (a *app) farmsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your farms; * marks the active one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.refreshFarms(cmd.Context()); err != nil {
				return err
			}
			a.printFarms(cmd)
			return nil
		},
	}
}

func (a *app) farmsAddCmd() *cobra.Command {
	var (
		in       entities.Farm
		lat, lon float64
	)
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a farm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			in.Name = args[0]
			if cmd.Flags().Changed("lat") {
				in.Latitude = &lat
			}
			if cmd.Flags().Changed("lon") {
				in.Longitude = &lon
			}
			f, err := a.api.CreateFarm(cmd.Context(), in)
			if err != nil {
				return err
			}
			if err := a.refreshFarms(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created farm %s (%s)\n", f.Name, f.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Location, "location", "", "location description")
	cmd.Flags().Float64Var(&in.AreaSize, "area", 0, "area in acres")
	cmd.Flags().StringVar(&in.SoilType, "soil", "", "predominant soil type")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	return cmd
}

func (a *app) farmsSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select ID",
		Short: "Make a farm the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.refreshFarms(cmd.Context()); err != nil {
				return err
			}
			for _, f := range a.farms.Farms() {
				if f.ID != args[0] {
					continue
				}
				a.farms.Select(&f)
				a.cfg.FarmID = f.ID
				if err := a.save(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Active farm: %s\n", f.Name)
				return nil
			}
			return fmt.Errorf("farm %s not found", args[0])
		},
	}
}

func (a *app) farmsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a farm with its fields, crops and recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}
			if err := a.api.DeleteFarm(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := a.refreshFarms(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted farm %s\n", args[0])
			return nil
		},
	}
}
