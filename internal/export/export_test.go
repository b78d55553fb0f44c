// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatpack/internal/model"
)

// fixedClock pins exports to a known instant for reproducible names.
var fixedClock = func() time.Time {
	return time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
}

func fixedOpts() *Options {
	opts := DefaultOptions()
	opts.Clock = fixedClock
	return opts
}

// sampleExport is the canonical two-turn conversation from the export
// format's documentation, plus a second conversation for selection tests.
const sampleExport = `[
	{"id":"a","title":"Hello","create_time":1700000000,"current_node":"n2","mapping":{
		"n1":{"id":"n1","parent":null,"message":{"author":{"role":"user"},"content":{"parts":["Hi"]}}},
		"n2":{"id":"n2","parent":"n1","message":{"author":{"role":"assistant"},"content":{"parts":["Hello back"]}}}
	}},
	{"id":"b","title":"Second","create_time":1700100000,"current_node":"m1","mapping":{
		"m1":{"id":"m1","parent":null,"message":{"author":{"role":"user"},"content":{"parts":["Other"]}}}
	}}
]`

func parseSample(t *testing.T) []*model.Conversation {
	t.Helper()
	convs, err := model.ParseExport([]byte(sampleExport))
	require.NoError(t, err)
	require.Len(t, convs, 2)
	return convs
}

// =============================================================================
// END-TO-END SCENARIO
// =============================================================================

func TestFiles_EndToEnd(t *testing.T) {
	convs := parseSample(t)

	artifacts, err := Files(convs, []int{0}, fixedOpts())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	a := artifacts[0]
	assert.Equal(t, "text/markdown", a.MimeType)
	assert.True(t, strings.HasSuffix(a.Name, "_Hello.md"), "name %q", a.Name)

	// Exactly two labeled blocks, user first.
	want := "**You**:\nHi\n\n\n**Assistant**:\nHello back"
	assert.Equal(t, want, string(a.Data))
}

func TestFiles_FilenameFromCreationTime(t *testing.T) {
	convs := parseSample(t)
	artifacts, err := Files(convs, []int{0}, fixedOpts())
	require.NoError(t, err)

	// create_time 1700000000 = 2023-11-14T22:13:20 UTC; name carries the
	// ISO date-time to the minute with dashes for the colons.
	created := time.Unix(1700000000, 0)
	wantPrefix := created.Format("2006-01-02T15-04") + "_"
	assert.True(t, strings.HasPrefix(artifacts[0].Name, wantPrefix),
		"name %q, want prefix %q", artifacts[0].Name, wantPrefix)
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestFiles_SelectionAscendingAndDeduplicated(t *testing.T) {
	convs := parseSample(t)

	// Reversed, duplicated, and out-of-range input still yields ascending
	// in-range indices.
	artifacts, err := Files(convs, []int{5, 1, 0, 1, -3}, fixedOpts())
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Contains(t, artifacts[0].Name, "Hello")
	assert.Contains(t, artifacts[1].Name, "Second")
}

func TestFiles_NilSelectionMeansAll(t *testing.T) {
	convs := parseSample(t)
	artifacts, err := Files(convs, nil, fixedOpts())
	require.NoError(t, err)
	assert.Len(t, artifacts, 2)
}

func TestFiles_EmptyConversationList(t *testing.T) {
	artifacts, err := Files(nil, nil, fixedOpts())
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

// =============================================================================
// BUNDLE TESTS
// =============================================================================

func TestBundle_RoundTrip(t *testing.T) {
	convs := parseSample(t)

	bundle, err := Bundle(convs, nil, fixedOpts())
	require.NoError(t, err)
	assert.Equal(t, "application/zip", bundle.MimeType)
	assert.Equal(t,
		fmt.Sprintf("conversations_%d.zip", fixedClock().UnixMilli()),
		bundle.Name)

	r, err := zip.NewReader(bytes.NewReader(bundle.Data), int64(len(bundle.Data)))
	require.NoError(t, err, "conforming reader must accept the bundle")
	require.Len(t, r.File, 2)

	rc, err := r.File[0].Open()
	require.NoError(t, err)
	content, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "**You**:\nHi\n\n\n**Assistant**:\nHello back", string(content))
}

func TestBundle_Reproducible(t *testing.T) {
	convs := parseSample(t)

	first, err := Bundle(convs, []int{0, 1}, fixedOpts())
	require.NoError(t, err)
	second, err := Bundle(convs, []int{1, 0}, fixedOpts())
	require.NoError(t, err)

	// Same selection and clock, regardless of selection order, must give
	// byte-identical archives.
	assert.Equal(t, first.Data, second.Data)
}

// =============================================================================
// MERGED TESTS
// =============================================================================

func TestMerged_SingleConversation(t *testing.T) {
	convs := parseSample(t)

	merged, err := Merged(convs, []int{0}, fixedOpts())
	require.NoError(t, err)
	assert.Equal(t,
		fmt.Sprintf("merged_conversations_%d.md", fixedClock().UnixMilli()),
		merged.Name)

	doc := string(merged.Data)
	assert.True(t, strings.HasPrefix(doc, "# Hello ("), "doc starts %q", doc)
	assert.Contains(t, doc, "**You**:\nHi")
	assert.NotContains(t, doc, "\n---\n", "single conversation needs no rule")
}

func TestMerged_SeparatesConversationsWithRule(t *testing.T) {
	convs := parseSample(t)

	merged, err := Merged(convs, nil, fixedOpts())
	require.NoError(t, err)

	doc := string(merged.Data)
	parts := strings.Split(doc, "\n\n---\n\n")
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "# Hello ("))
	assert.True(t, strings.HasPrefix(parts[1], "# Second ("))
}

// =============================================================================
// WRITE TESTS
// =============================================================================

func TestWrite_PlacesArtifactInOutputDir(t *testing.T) {
	opts := fixedOpts()
	opts.OutputDir = t.TempDir()

	path, err := Write(Artifact{Name: "out.md", Data: []byte("content")}, opts)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "out.md"))
}
