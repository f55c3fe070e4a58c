package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut     string
	exportPublish bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summary image tools",
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the cached summary image to a file",
	Long: `Reads the cached summary image and writes it to --out.
With --publish the image is rendered from the current database first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer rt.close()
		ctx := cmd.Context()

		if exportPublish {
			if err := rt.reports.Publish(ctx); err != nil {
				return fmt.Errorf("failed to publish report: %w", err)
			}
		}

		data, err := rt.reports.GetReport(ctx)
		if err != nil {
			return fmt.Errorf("failed to load report: %w", err)
		}

		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOut, err)
		}
		rt.logger.Info("Report exported", zap.String("file", exportOut), zap.Int("bytes", len(data)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportExportCmd)
	reportExportCmd.Flags().StringVarP(&exportOut, "out", "o", "summary.png", "Output file")
	reportExportCmd.Flags().BoolVar(&exportPublish, "publish", false, "Render the report before exporting")
}
