package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/export"
	"stellar-cargo/internal/fixtures"
	"stellar-cargo/internal/store"
	"stellar-cargo/internal/views"
)

type exportOptions struct {
	query, status, cargoType string
	sort, order, timeRange  string
	outDir                  string
}

func newExportCmd() *cobra.Command {
	var opts exportOptions
	cmd := &cobra.Command{
		Use:       "export CATEGORY",
		Short:     "Write the filtered seed dataset of a category to its report file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cargo", "modules", "astronauts", "missions", "activity"},
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(cmd)
			if err != nil {
				return err
			}
			category, err := export.ParseCategory(args[0])
			if err != nil {
				return err
			}
			required := auth.CapViewReports
			if category == export.CategoryActivity {
				required = auth.CapViewActivity
			}
			if !auth.Can(user.Role, required) {
				return auth.ErrForbidden
			}

			body, err := exportData(category, opts, time.Now())
			if err != nil {
				return err
			}
			data, err := export.Marshal(body)
			if err != nil {
				return err
			}
			dst := filepath.Join(opts.outDir, export.Filename(category))
			if err := os.WriteFile(dst, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", dst, err)
			}
			logger.Debug("export written", zap.String("category", string(category)), zap.String("path", dst))
			fmt.Fprintln(cmd.OutOrStdout(), dst)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Search text")
	cmd.Flags().StringVar(&opts.status, "status", views.All, "Status filter")
	cmd.Flags().StringVar(&opts.cargoType, "type", views.All, "Cargo type filter")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Cargo sort field")
	cmd.Flags().StringVar(&opts.order, "order", "asc", "Cargo sort direction")
	cmd.Flags().StringVar(&opts.timeRange, "range", string(views.RangeAll), "Activity time range: all, today, week, month")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	return cmd
}

func exportData(category export.Category, opts exportOptions, now time.Time) (any, error) {
	snap := store.New(fixtures.Seed()).Snapshot()
	switch category {
	case export.CategoryCargo:
		field, err := views.ParseSortField(opts.sort)
		if err != nil {
			return nil, err
		}
		dir, err := views.ParseSortDirection(opts.order)
		if err != nil {
			return nil, err
		}
		return views.Cargo(snap.Cargo, views.CargoFilter{
			Query:  opts.query,
			Status: opts.status,
			Type:   opts.cargoType,
			Sort:   views.SortState{Field: field, Direction: dir},
		}), nil
	case export.CategoryAstronauts:
		return views.Astronauts(snap.Astronauts, views.AstronautFilter{Query: opts.query, Status: opts.status}), nil
	case export.CategoryModules:
		return views.Modules(snap.Modules, views.ModuleFilter{Query: opts.query, Status: opts.status}), nil
	case export.CategoryMissions:
		return views.Missions(snap.Missions, views.MissionFilter{Query: opts.query, Status: opts.status}), nil
	case export.CategoryActivity:
		tr, err := views.ParseTimeRange(opts.timeRange)
		if err != nil {
			return nil, err
		}
		return views.Activity(snap.ActivityLogs, views.ActivityFilter{Query: opts.query, Range: tr, Now: now}), nil
	}
	return nil, fmt.Errorf("unknown export category %q", category)
}
