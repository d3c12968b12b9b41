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

package corpus_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/assert"

	"github.com/julianbeese/Group-11/internal/corpus"
)

// TestNewDatasetLoadsBothTables verifies the happy path: both fixture files
// parse into tables of the expected size, fields land in the right columns,
// and the dataset carries a session id for its diagnostics.
func TestNewDatasetLoadsBothTables(t *testing.T) {
	d := newFixtureDataset(t)

	require.Len(t, d.Movies(), 5)
	require.Len(t, d.Characters(), 5)
	assert.True(t, d.SessionID != "")

	first := d.Movies()[0]
	assert.Equal(t, "m1", first.MovieID)
	assert.Equal(t, "First Drama", first.Title)
	assert.Equal(t, `{"/m/07s9rl0": "Drama"}`, first.Genres)

	char := d.Characters()[0]
	assert.Equal(t, "fm1", char.FreebaseMovieID)
	assert.Equal(t, "F", char.ActorGender)
	assert.Equal(t, "1.62", char.ActorHeight)
	assert.Equal(t, "Alpha Actress", char.ActorName)
}

// TestNewDatasetMissingFile verifies that a missing raw file surfaces as
// ErrDataUnavailable rather than a bare os error, since the caller matches
// on the sentinel to decide what to show the user.
func TestNewDatasetMissingFile(t *testing.T) {
	dir := t.TempDir()
	charPath := writeLines(t, dir, "character.metadata.tsv", defaultCharacterLines())

	_, err := corpus.NewDataset(context.Background(), filepath.Join(dir, "no-such-file.tsv"), charPath)
	require.ErrorIs(t, err, corpus.ErrDataUnavailable)

	moviePath := writeLines(t, dir, "movie.metadata.tsv", defaultMovieLines())
	_, err = corpus.NewDataset(context.Background(), moviePath, filepath.Join(dir, "also-missing.tsv"))
	require.ErrorIs(t, err, corpus.ErrDataUnavailable)
}

// TestNewDatasetSchemaMismatch verifies that a row with the wrong column
// count fails the whole load instead of being silently reinterpreted under
// a guessed schema.
func TestNewDatasetSchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	moviePath := writeLines(t, dir, "movie.metadata.tsv", []string{
		"m1\tOnly Two Columns",
	})
	charPath := writeLines(t, dir, "character.metadata.tsv", defaultCharacterLines())

	_, err := corpus.NewDataset(context.Background(), moviePath, charPath)
	require.ErrorIs(t, err, corpus.ErrDataUnavailable)
	require.ErrorContains(t, err, "columns")
}

// TestGenders verifies the distinct non-empty gender inventory keeps
// first-seen order and drops the empty value.
func TestGenders(t *testing.T) {
	d := newFixtureDataset(t)
	require.Equal(t, []string{"F", "M"}, d.Genders())
}
