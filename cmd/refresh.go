package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one ingestion pass",
	Long: `Fetches the country dataset, reconciles it against the database and
publishes a fresh summary image, without starting the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer rt.close()

		summary, err := rt.countries.RunIngestion(cmd.Context())
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}

		rt.logger.Info("Refresh completed",
			zap.Int("total", summary.Total),
			zap.Int("created", summary.Created),
			zap.Int("updated", summary.Updated),
			zap.Int("failed", summary.Failed),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "processed %d countries: %d created, %d updated, %d failed\n",
			summary.Total, summary.Created, summary.Updated, summary.Failed)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(refreshCmd)
}
