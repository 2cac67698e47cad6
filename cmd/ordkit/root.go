// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/spf13/cobra"

	"github.com/AleutianAI/ordkit/cmd/ordkit/config"
	"github.com/AleutianAI/ordkit/pkg/logging"
)

// =============================================================================
// GLOBAL FLAGS
// =============================================================================

var (
	debugFlag  bool
	quietFlag  bool
	jsonFlag   bool
	logDirFlag string
)

// appLogger is the process-wide logger, wired up before any
// subcommand runs and closed after it finishes.
var appLogger *logging.Logger

// =============================================================================
// ROOT COMMAND
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "ordkit",
	Short: "Correlated sorting and ordered-set tools for line data",
	Long: `ordkit sorts and deduplicates line-oriented data.

Unlike plain sort(1), ordkit separates the ordering decision from the
data movement: a key column can drive the order while whole records
move with it, and the same ordering can be committed into any number
of parallel columns.

Examples:
  ordkit sort access.log -k 3 --numeric
  cat names.txt | ordkit uniq -i`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		appLogger = logging.New(loggingConfig())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Close()
		}
	},
}

// loggingConfig merges the config file defaults with the global
// flags; flags win.
func loggingConfig() logging.Config {
	cfg := logging.Config{
		Level:   logging.LevelInfo,
		Service: "ordkit",
		LogDir:  config.Global.Logging.Dir,
		JSON:    config.Global.Logging.JSON,
	}
	if config.Global.Logging.Level == "debug" {
		cfg.Level = logging.LevelDebug
	}
	if debugFlag {
		cfg.Level = logging.LevelDebug
	}
	if quietFlag {
		cfg.Quiet = true
	}
	if jsonFlag {
		cfg.JSON = true
	}
	if logDirFlag != "" {
		cfg.LogDir = logDirFlag
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress log output on stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&logDirFlag, "log-dir", "", "Directory for log files (overrides config)")

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(uniqCmd)
}
