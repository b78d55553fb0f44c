// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/chatpack/internal/chain"
	"github.com/jeranaias/chatpack/internal/util"
)

// titleColWidth bounds the title column so CJK-heavy titles keep the table
// aligned (display width, not rune count).
const titleColWidth = 48

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <export.json>",
		Short: "List conversations in an archive with their selection indices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0])
		},
	}
}

// runList prints one table row per conversation: index, creation date,
// reconstructed message count, and title.
func runList(path string) error {
	convs, err := readExport(path)
	if err != nil {
		return err
	}

	fmt.Printf("%4s  %-16s  %5s  %s\n", "#", "DATE", "MSGS", "TITLE")
	for i, conv := range convs {
		created := conv.CreatedAt(time.Now)
		msgs := chain.Reconstruct(conv)
		fmt.Printf("%4d  %-16s  %5d  %s\n",
			i,
			created.Format("2006-01-02 15:04"),
			len(msgs),
			util.TruncateWidth(conv.DisplayTitle(), titleColWidth))
	}
	log.WithField("conversations", len(convs)).Debug("listed export file")
	return nil
}
