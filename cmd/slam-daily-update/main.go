// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slam-daily-update CLI: it
// discovers open-source SLAM paper repositories on GitHub, extracts
// paper metadata from their READMEs, and maintains a deduplicated,
// year-sorted summary table in a local markdown document.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robosu12/SLAM-daily-update/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the slam-daily-update CLI.
var rootCmd = &cobra.Command{
	Use:   "slam-daily-update",
	Short: "Track newly published open-source SLAM papers on GitHub",
	Long: `slam-daily-update searches GitHub for repositories that publish SLAM
papers with code, extracts paper metadata (title, authors, venue, year,
paper link) from each repository's README, and keeps a summary table in
a local markdown document up to date.

Repositories already recorded in the ledger file are skipped on later
runs, so the tool is safe to run daily.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slam-daily-update.yaml or ~/.config/slam-daily-update/config.yaml)")
	rootCmd.PersistentFlags().String("token", "", "GitHub API token (default: GITHUB_TOKEN env or .secrets/github-token)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slam-daily-update")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slam-daily-update"))
		}
	}

	viper.SetEnvPrefix("SLAM_DAILY_UPDATE")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
