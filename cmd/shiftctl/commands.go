package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daphos/shift-service/internal/app"
	"github.com/daphos/shift-service/internal/auth"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/export"
	"github.com/daphos/shift-service/internal/persistence"
)

type storageRunner func(run func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error

func newDashboardCommand(withStorage storageRunner) *cobra.Command {
	var (
		ref      string
		fullTime float64
	)
	cmd := &cobra.Command{
		Use:   "dashboard <employee-id>",
		Short: "Print an employee's shift metrics",
		Args:  cobra.ExactArgs(1),
		RunE: withStorage(func(cmd *cobra.Command, args []string, e *env) error {
			at := app.Clock(e.cfg)()
			if strings.TrimSpace(ref) != "" {
				parsed, err := parseRef(ref)
				if err != nil {
					return err
				}
				at = parsed
			}
			services := app.NewServices(e.cfg, e.storage, e.logger)
			defer services.Close()

			d, err := services.Dashboard.Dashboard(cmd.Context(), args[0], at, fullTime)
			if err != nil {
				return err
			}
			return printDashboard(cmd.OutOrStdout(), d, at)
		}),
	}
	cmd.Flags().StringVar(&ref, "ref", "", "Reference day or time (YYYY-MM-DD or YYYY-MM-DDTHH:MM); defaults to now")
	cmd.Flags().Float64Var(&fullTime, "full-time", 0, "Full-time baseline in hours (0 = configured value)")
	return cmd
}

func newExportCommand(withStorage storageRunner) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <employee-id>",
		Short: "Write an employee's shifts to an .xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: withStorage(func(cmd *cobra.Command, args []string, e *env) error {
			employee, err := e.storage.Employees.GetByID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("employee %s: %w", args[0], err)
			}
			shifts, err := e.storage.Shifts.ListByEmployee(cmd.Context(), employee.ID)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("shifts-%s.xlsx", employee.ID)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(f)
			if err := export.WriteShifts(w, *employee, shifts); err != nil {
				_ = f.Close()
				return err
			}
			if err := w.Flush(); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d shifts to %s\n", len(shifts), out)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default shifts-<id>.xlsx)")
	return cmd
}

func newSeedCommand(withStorage storageRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the default roster into an empty store",
		Args:  cobra.NoArgs,
		RunE: withStorage(func(cmd *cobra.Command, _ []string, e *env) error {
			data := persistence.DefaultDataset()
			if err := e.storage.Seed(cmd.Context(), data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d employees and %d shifts (%s)\n",
				len(data.Employees), len(data.Shifts), e.storage.Driver)
			return nil
		}),
	}
}

// newMigrateCommand relies on OpenStorage, which applies the schema for SQL drivers.
func newMigrateCommand(withStorage storageRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Args:  cobra.NoArgs,
		RunE: withStorage(func(cmd *cobra.Command, _ []string, e *env) error {
			switch e.storage.Driver {
			case config.StoragePostgres:
				if !e.cfg.Postgres.RunMigrations {
					return fmt.Errorf("POSTGRES_RUN_MIGRATIONS is false")
				}
			case config.StorageMemory:
				fmt.Fprintln(cmd.OutOrStdout(), "memory driver has no schema")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", e.storage.Driver)
			return nil
		}),
	}
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for AUTH_OPERATOR_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0], 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func parseRef(raw string) (time.Time, error) {
	if v, err := domain.ParseLocalTime(raw); err == nil {
		return v, nil
	}
	return domain.ParseDate(raw)
}
