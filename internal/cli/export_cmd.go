// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeranaias/chatpack/internal/config"
	"github.com/jeranaias/chatpack/internal/export"
	"github.com/jeranaias/chatpack/internal/model"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var (
		format    string
		selectRaw string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "export <export.json>",
		Short: "Export conversations from an archive to transcript files",
		Long: `Export reads a conversation archive and writes transcripts.

Formats:
  files    one markdown file per conversation (default)
  zip      a single uncompressed ZIP bundle of all transcripts
  merged   a single markdown document concatenating all transcripts

Selection:
  --select takes comma-separated conversation indices as shown by
  "chatpack list". Indices are processed in ascending order regardless
  of how they are given; omit the flag to export everything.

Examples:
  chatpack export conversations.json
  chatpack export conversations.json --format zip -o ~/exports
  chatpack export conversations.json --select 0,3,7 --format merged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Format
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}

			selected, err := parseSelection(selectRaw)
			if err != nil {
				return err
			}
			return runExport(args[0], format, selected, outputDir)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "export format: files, zip, or merged")
	cmd.Flags().StringVarP(&selectRaw, "select", "s", "", "comma-separated conversation indices (default: all)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
	return cmd
}

// runExport performs one full export operation: read, parse, render, write.
func runExport(path, format string, selected []int, outputDir string) error {
	convs, err := readExport(path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": path, "conversations": len(convs)}).Debug("parsed export file")

	opts := export.DefaultOptions()
	opts.OutputDir = outputDir

	var artifacts []export.Artifact
	switch format {
	case config.FormatFiles:
		artifacts, err = export.Files(convs, selected, opts)
	case config.FormatZip:
		var bundle *export.Artifact
		bundle, err = export.Bundle(convs, selected, opts)
		if bundle != nil {
			artifacts = []export.Artifact{*bundle}
		}
	case config.FormatMerged:
		var merged *export.Artifact
		merged, err = export.Merged(convs, selected, opts)
		if merged != nil {
			artifacts = []export.Artifact{*merged}
		}
	default:
		return fmt.Errorf("unknown format %q (want files, zip, or merged)", format)
	}
	if err != nil {
		return err
	}

	for _, a := range artifacts {
		written, err := export.Write(a, opts)
		if err != nil {
			return err
		}
		log.WithField("path", written).Info("wrote artifact")
	}
	log.WithField("artifacts", len(artifacts)).Info("export complete")
	return nil
}

// readExport loads and parses an export file.
func readExport(path string) ([]*model.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	convs, err := model.ParseExport(data)
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// parseSelection parses a comma-separated index list like "0,3,7".
func parseSelection(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		idx, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid selection index %q", field)
		}
		if idx < 0 {
			return nil, fmt.Errorf("invalid selection index %d", idx)
		}
		out = append(out, idx)
	}
	return out, nil
}
