// Package cmd provides the command-line interface of portfolio-data:
// the http server and the offline export and snapshot commands.
package cmd

import (
	"fmt"

	"github.com/kuxall/portfolio-data/config"
	"github.com/kuxall/portfolio-data/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version can be overridden at build time with -ldflags="-X .../cmd.Version=v1.0.0"
var Version = "dev"

// cfg is loaded once before any subcommand runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "portfolio-data",
	Short: "Aggregate GitHub profile data for a portfolio site",
	Long: `portfolio-data fetches a GitHub profile and its repositories, then derives
the featured projects, skills, stats and narrative shown on a portfolio site.
Whenever GitHub cannot be reached, an embedded snapshot is used instead.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = loadConfig()
		logger.Setup(*cfg)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Use `portfolio-data serve` to start the api, or `portfolio-data --help` for all commands.")
	},
}

func Execute() {
	rootCmd.Version = Version
	cobra.CheckErr(rootCmd.Execute())
}

// loadConfig reads the configuration file, or keeps the defaults when it cannot be loaded
func loadConfig() *config.Config {
	loaded, err := config.Load()
	if err != nil {
		log.WithError(err).Warning("unable to load configuration, using default values")

		loaded = config.GetDefault()
		loaded.ApplyEnv()
	}

	return loaded
}
