// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robosu12/SLAM-daily-update/internal/discover"
	"github.com/robosu12/SLAM-daily-update/internal/extract"
	"github.com/robosu12/SLAM-daily-update/internal/pipeline"
	"github.com/robosu12/SLAM-daily-update/internal/secrets"
	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

const defaultUserAgent = "slam-daily-update/0.1"

// setDefaults registers every configurable value with viper, so a
// config file or SLAM_DAILY_UPDATE_* environment variable can override
// any of them.
func setDefaults() {
	viper.SetDefault("github.timeout", 30*time.Second)
	viper.SetDefault("github.user_agent", defaultUserAgent)

	viper.SetDefault("discovery.keywords", discover.DefaultKeywords)
	viper.SetDefault("discovery.venues", extract.DefaultVenues)
	viper.SetDefault("discovery.per_page", discover.DefaultPerPage)
	viper.SetDefault("discovery.page_interval", pipeline.DefaultPageInterval)
	viper.SetDefault("discovery.skip_processed", true)
	viper.SetDefault("discovery.only_recent", false)
	viper.SetDefault("discovery.recency_window", pipeline.DefaultRecencyWindow)

	viper.SetDefault("process.item_interval", pipeline.DefaultItemInterval)

	viper.SetDefault("output.ledger_path", "processed_repos.txt")
	viper.SetDefault("output.summary_path", "README.md")

	viper.SetDefault("extract.labels.title", "")
	viper.SetDefault("extract.labels.authors", "")
	viper.SetDefault("extract.labels.venue", "")
	viper.SetDefault("extract.labels.year", "")
	viper.SetDefault("extract.labels.paper_link", "")
}

// buildConfig assembles the immutable run configuration from viper
// (config file and environment) with command flags taking precedence.
func buildConfig(cmd *cobra.Command) types.Config {
	tokenFlag, _ := cmd.Flags().GetString("token")

	cfg := types.Config{
		GitHub: types.GitHubConfig{
			Token:     secrets.GitHubToken(tokenFlag, loadedSecrets),
			Timeout:   viper.GetDuration("github.timeout"),
			UserAgent: viper.GetString("github.user_agent"),
		},
		Discovery: types.DiscoveryConfig{
			Keywords:      viper.GetStringSlice("discovery.keywords"),
			Venues:        viper.GetStringSlice("discovery.venues"),
			PerPage:       viper.GetInt("discovery.per_page"),
			PageInterval:  viper.GetDuration("discovery.page_interval"),
			SkipProcessed: viper.GetBool("discovery.skip_processed"),
			OnlyRecent:    viper.GetBool("discovery.only_recent"),
			RecencyWindow: viper.GetDuration("discovery.recency_window"),
		},
		Process: types.ProcessConfig{
			ItemInterval: viper.GetDuration("process.item_interval"),
		},
		Extract: types.ExtractConfig{
			Labels: types.SectionLabels{
				Title:     viper.GetString("extract.labels.title"),
				Authors:   viper.GetString("extract.labels.authors"),
				Venue:     viper.GetString("extract.labels.venue"),
				Year:      viper.GetString("extract.labels.year"),
				PaperLink: viper.GetString("extract.labels.paper_link"),
			},
			Venues: viper.GetStringSlice("discovery.venues"),
		},
		Output: types.OutputConfig{
			LedgerPath:  viper.GetString("output.ledger_path"),
			SummaryPath: viper.GetString("output.summary_path"),
		},
	}

	if cmd.Flags().Changed("ledger") {
		cfg.Output.LedgerPath, _ = cmd.Flags().GetString("ledger")
	}
	if cmd.Flags().Changed("summary") {
		cfg.Output.SummaryPath, _ = cmd.Flags().GetString("summary")
	}
	if cmd.Flags().Changed("only-recent") {
		cfg.Discovery.OnlyRecent, _ = cmd.Flags().GetBool("only-recent")
	}
	if cmd.Flags().Changed("no-dedup") {
		noDedup, _ := cmd.Flags().GetBool("no-dedup")
		cfg.Discovery.SkipProcessed = !noDedup
	}
	if cmd.Flags().Changed("timeout") {
		cfg.GitHub.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	return cfg
}
