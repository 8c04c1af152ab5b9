package cmd

import (
	"context"
	"fmt"

	"github.com/kuxall/portfolio-data/cache"
	"github.com/kuxall/portfolio-data/model"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const defaultSnapshotPath = "cache/github-cache.json"

var (
	snapshotHandle string
	snapshotOutput string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Refresh the fallback snapshot from live GitHub data",
	Long: `Fetch the live profile and repositories and write them as the fallback snapshot.
The file is embedded at the next build. Nothing is written unless both were fetched live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		githubService, _, err := setupServices(ctx, *cfg)
		if err != nil {
			return err
		}

		handle := handleOrDefault(snapshotHandle, *cfg)

		spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Fetching live data of " + handle + "...")
		profile := githubService.FetchUser(ctx, handle)
		repos := githubService.FetchRepositories(ctx, handle)
		_ = spinner.Stop()

		if profile.Source != model.SourceLive || repos.Source != model.SourceLive {
			pterm.Error.Printf("GitHub could not be reached (profile: %s, repositories: %s), snapshot left untouched\n", profile.Source, repos.Source)
			return fmt.Errorf("live data unavailable for %s", handle)
		}

		output := snapshotOutput
		if output == "" {
			output = defaultSnapshotPath
		}

		if err := cache.Write(output, profile.Data, repos.Data); err != nil {
			return err
		}

		pterm.Success.Printf("Snapshot of %s written to %s (%d repositories)\n", handle, output, len(repos.Data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&snapshotHandle, "handle", "u", "", "GitHub handle (default: configured username)")
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "O", "", "Snapshot file path (default: "+defaultSnapshotPath+")")
}
