// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpus_test contains the test suite for the aggregation core.
// This file provides the shared synthetic corpus: small tab-separated
// fixture files written into a per-test temporary directory, so every test
// constructs its Dataset from fixture paths rather than the real,
// network-provisioned files.
package corpus_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/julianbeese/Group-11/internal/corpus"
)

// movieRow joins the 8 movie columns into one raw line.
func movieRow(id, title, date, revenue, runtime, languages, countries, genres string) string {
	return strings.Join([]string{id, title, date, revenue, runtime, languages, countries, genres}, "\t")
}

// charRow builds one raw 13-column character line from the fields the tests
// care about; the freebase map columns are filled with placeholders.
func charRow(movieID, gender, height, actor string) string {
	return strings.Join([]string{
		"975900", movieID, "2001-08-24", "Some Character", "1958-08-26",
		gender, height, "/m/044038p", actor, "42",
		"/m/0bgchxw", "/m/0bgcj3x", "/m/03wcfv7",
	}, "\t")
}

// writeLines writes raw lines as a fixture file and returns its path.
func writeLines(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

// defaultMovieLines is the standard movie fixture: two Drama movies, one
// Comedy movie, one movie tagged with both, and one with an undecodable
// genre field.
func defaultMovieLines() []string {
	return []string{
		movieRow("m1", "First Drama", "2001-08-24", "10000", "98",
			`{"/m/02h40lc": "English Language"}`, `{"/m/09c7w0": "United States of America"}`,
			`{"/m/07s9rl0": "Drama"}`),
		movieRow("m2", "Second Drama", "2002-01-01", "", "",
			`{}`, `{}`, `{"/m/07s9rl0": "Drama"}`),
		movieRow("m3", "The Comedy", "1999-05-05", "500", "110",
			`{}`, `{}`, `{"/m/05p553": "Comedy"}`),
		movieRow("m4", "Both Kinds", "2010-10-10", "", "",
			`{}`, `{}`, `{"/m/07s9rl0": "Drama", "/m/05p553": "Comedy"}`),
		movieRow("m5", "Broken Genres", "2010-10-10", "", "",
			`{}`, `{}`, `not a mapping at all`),
	}
}

// defaultCharacterLines is the standard character fixture: movie fm1 has
// three characters, fm2 has one, fm3 has one, including malformed and
// missing heights.
func defaultCharacterLines() []string {
	return []string{
		charRow("fm1", "F", "1.62", "Alpha Actress"),
		charRow("fm1", "M", "1.88", "Beta Actor"),
		charRow("fm1", "F", "tall", "Gamma Actress"),
		charRow("fm2", "M", "1.75", "Delta Actor"),
		charRow("fm3", "", "", "Epsilon Unknown"),
	}
}

// newFixtureDataset writes the standard fixtures and loads them.
func newFixtureDataset(t *testing.T) *corpus.Dataset {
	t.Helper()
	dir := t.TempDir()
	moviePath := writeLines(t, dir, "movie.metadata.tsv", defaultMovieLines())
	charPath := writeLines(t, dir, "character.metadata.tsv", defaultCharacterLines())
	d, err := corpus.NewDataset(context.Background(), moviePath, charPath)
	require.NoError(t, err)
	return d
}
