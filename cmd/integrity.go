package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag    bool
	onlySchema bool
)

var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Run integrity checks",
	Long: `Checks the report bucket and the database schema.
Use --fix to create a missing bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The schema check must see the database as it is.
		rt, err := bootstrap(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.logger
		ctx := cmd.Context()

		if fixFlag && rt.integrity.HasStorage() && !onlySchema {
			if _, err := rt.integrity.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to fix storage: %w", err)
			}
		}

		report := rt.integrity.Run(ctx)
		if onlySchema {
			report.Storage = nil
		}

		if report.Schema != nil {
			for table, tbl := range report.Schema.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		if !report.Healthy {
			return fmt.Errorf("integrity checks failed")
		}
		logg.Info("All integrity checks passed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the report bucket when missing")
	integrityCmd.Flags().BoolVar(&onlySchema, "schema", false, "Only check the database schema")
}
