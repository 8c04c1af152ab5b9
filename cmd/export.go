package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/kuxall/portfolio-data/export"
	"github.com/kuxall/portfolio-data/model"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	exportHandle string
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the aggregated portfolio as a data file",
	Long: `Write the aggregated portfolio as a json or yaml data file for the static site build.

Examples:
  portfolio-data export                                   # json on stdout
  portfolio-data export --format yaml -O data/portfolio.yaml
  portfolio-data export --handle octocat -O octocat.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !export.Supported(exportFormat) {
			return errors.New(model.NewAPIError(export.ErrInvalidFormat).Message)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		_, portfolioService, err := setupServices(ctx, *cfg)
		if err != nil {
			return err
		}

		handle := handleOrDefault(exportHandle, *cfg)

		spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).WithWriter(os.Stderr).Start("Fetching portfolio of " + handle + "...")
		portfolio := portfolioService.GetPortfolio(ctx, handle)
		_ = spinner.Stop()

		warnFallbackSources(portfolio.Sources)

		if exportOutput == "" {
			return export.Write(os.Stdout, portfolio, exportFormat)
		}

		if err := export.WriteFile(exportOutput, portfolio, exportFormat); err != nil {
			return err
		}

		pterm.Success.Printf("Portfolio of %s written to %s\n", handle, exportOutput)
		return nil
	},
}

// warnFallbackSources tells the user when the export is built from the snapshot
func warnFallbackSources(sources model.Sources) {
	if sources.Profile != model.SourceLive {
		pterm.Warning.WithWriter(os.Stderr).Printf("Profile loaded from %s data\n", sources.Profile)
	}

	if sources.Repositories != model.SourceLive {
		pterm.Warning.WithWriter(os.Stderr).Printf("Repositories loaded from %s data\n", sources.Repositories)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportHandle, "handle", "u", "", "GitHub handle (default: configured username)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatJSON, "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "O", "", "Output file path (default: stdout)")
}
