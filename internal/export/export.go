// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jeranaias/chatpack/internal/archive"
	"github.com/jeranaias/chatpack/internal/model"
	"github.com/jeranaias/chatpack/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for per-conversation exporters.
type Exporter interface {
	// Export converts a conversation to the target format.
	Export(conv *model.Conversation) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where Write places artifacts.
	// Default: current working directory
	OutputDir string

	// Clock supplies the current time for generated filenames and for
	// conversations with a missing creation timestamp. Exports with a
	// fixed clock and selection are byte-reproducible.
	// Default: time.Now
	Clock func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir: ".",
		Clock:     time.Now,
	}
}

func (o *Options) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

// =============================================================================
// ARTIFACT TYPE
// =============================================================================

// Artifact is one named output buffer, fully assembled in memory.
type Artifact struct {
	Name     string
	MimeType string
	Data     []byte
}

// =============================================================================
// ORCHESTRATION
// =============================================================================

// Files renders one markdown artifact per selected conversation. A nil or
// empty selection means every conversation. Processing always proceeds in
// ascending index order; duplicate and out-of-range indices are dropped.
func Files(convs []*model.Conversation, selected []int, opts *Options) ([]Artifact, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	exporter := NewMarkdownExporter(opts)

	var artifacts []Artifact
	for _, idx := range normalizeSelection(selected, len(convs)) {
		conv := convs[idx]
		data, err := exporter.Export(conv)
		if err != nil {
			return nil, fmt.Errorf("export conversation %d: %w", idx, err)
		}
		artifacts = append(artifacts, Artifact{
			Name:     transcriptFilename(conv, opts) + exporter.FileExtension(),
			MimeType: exporter.MimeType(),
			Data:     data,
		})
	}
	return artifacts, nil
}

// Bundle renders the selected conversations and assembles their transcripts
// into a single uncompressed ZIP archive. The archive is built all-or-
// nothing in memory: an error from any conversation aborts the whole
// bundle before a single byte is emitted.
func Bundle(convs []*model.Conversation, selected []int, opts *Options) (*Artifact, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	artifacts, err := Files(convs, selected, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]archive.Entry, len(artifacts))
	for i, a := range artifacts {
		entries[i] = archive.Entry{Name: a.Name, Data: a.Data}
	}
	return &Artifact{
		Name:     fmt.Sprintf("conversations_%d.zip", opts.now().UnixMilli()),
		MimeType: "application/zip",
		Data:     archive.Build(entries),
	}, nil
}

// Merged concatenates the selected conversations into one markdown
// document. Each conversation contributes a heading with its title and
// creation date followed by its transcript; conversations are separated by
// a horizontal rule.
func Merged(convs []*model.Conversation, selected []int, opts *Options) (*Artifact, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	exporter := NewMarkdownExporter(opts)

	var sections []string
	for _, idx := range normalizeSelection(selected, len(convs)) {
		conv := convs[idx]
		data, err := exporter.Export(conv)
		if err != nil {
			return nil, fmt.Errorf("export conversation %d: %w", idx, err)
		}
		heading := fmt.Sprintf("# %s (%s)",
			conv.DisplayTitle(),
			conv.CreatedAt(opts.now).Format("2006-01-02 15:04"))
		sections = append(sections, heading+"\n\n"+string(data))
	}
	return &Artifact{
		Name:     fmt.Sprintf("merged_conversations_%d.md", opts.now().UnixMilli()),
		MimeType: "text/markdown",
		Data:     []byte(strings.Join(sections, "\n\n---\n\n")),
	}, nil
}

// Write persists an artifact under the options' output directory using an
// atomic write, so export-time I/O failures never leave partial files.
func Write(a Artifact, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	path := filepath.Join(opts.OutputDir, a.Name)
	if err := util.AtomicWriteFile(path, a.Data, 0644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", a.Name, err)
	}
	return path, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// normalizeSelection resolves a requested selection against n conversations:
// ascending order, no duplicates, out-of-range indices dropped. A nil or
// empty request selects everything.
func normalizeSelection(selected []int, n int) []int {
	if len(selected) == 0 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}

	seen := make(map[int]struct{}, len(selected))
	var out []int
	for _, idx := range selected {
		if idx < 0 || idx >= n {
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// transcriptFilename builds the artifact name stem for one conversation:
// an ISO date-time to the minute with dashes, then the sanitized title.
func transcriptFilename(conv *model.Conversation, opts *Options) string {
	created := conv.CreatedAt(opts.now)
	return created.Format("2006-01-02T15-04") + "_" + util.SanitizeFilename(conv.DisplayTitle())
}
