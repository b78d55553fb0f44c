// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the chatpack command-line interface.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeranaias/chatpack/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	log = logrus.New()

	cfgPath string
	verbose bool
)

// newRootCmd builds the chatpack command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chatpack",
		Short: "Convert exported conversation archives to portable transcripts",
		Long: `chatpack ingests an exported conversation archive (a JSON array of
conversation records with parent-pointer message trees) and produces
per-conversation markdown transcripts, a merged transcript, or an
uncompressed ZIP bundle of all selected conversations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(logrus.InfoLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.chatpack/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newExportCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI and reports any error to the user.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		log.Error(err)
	}
	return err
}

// loadConfig loads configuration honoring the --config flag and flips the
// log level if the file asks for verbosity.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return cfg, nil
}

// newVersionCmd reports build information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chatpack %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}
