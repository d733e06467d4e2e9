package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
)

var configFolder string

var rootCmd = &cobra.Command{
	Use:   "forum-api",
	Short: "Discussion forum HTTP API",
	Long:  `Serves threads, comments, replies and comment likes over a JSON API.`,
	// bare invocation serves
	RunE: runServe,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.MustLoad(configFolder)
		logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)
	},
	SilenceUsage: true,
}

var cfg *config.Config

func init() {
	rootCmd.PersistentFlags().StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
