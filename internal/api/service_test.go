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

// Package api_test exercises the raw-parameter boundary: every malformed
// input the reference behavior rejects must come back as
// corpus.ErrInvalidArgument here, before the aggregation core is touched.
package api_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/julianbeese/Group-11/internal/api"
	"github.com/julianbeese/Group-11/internal/corpus"
)

// newService loads a minimal fixture corpus and wraps it in a Service.
func newService(t *testing.T) *api.Service {
	t.Helper()
	dir := t.TempDir()
	moviePath := filepath.Join(dir, "movie.metadata.tsv")
	movieRows := strings.Join([]string{
		"m1", "First Drama", "2001-08-24", "", "", "{}", "{}", `{"/m/07s9rl0": "Drama"}`,
	}, "\t") + "\n" + strings.Join([]string{
		"m2", "Second Drama", "2002-01-01", "", "", "{}", "{}", `{"/m/07s9rl0": "Drama"}`,
	}, "\t") + "\n" + strings.Join([]string{
		"m3", "The Comedy", "1999-05-05", "", "", "{}", "{}", `{"/m/05p553": "Comedy"}`,
	}, "\t") + "\n"
	require.NoError(t, os.WriteFile(moviePath, []byte(movieRows), 0o644))

	charPath := filepath.Join(dir, "character.metadata.tsv")
	charRow := strings.Join([]string{
		"975900", "fm1", "2001-08-24", "Some Character", "1958-08-26",
		"F", "1.62", "", "Alpha Actress", "42", "", "", "",
	}, "\t") + "\n"
	require.NoError(t, os.WriteFile(charPath, []byte(charRow), 0o644))

	data, err := corpus.NewDataset(context.Background(), moviePath, charPath)
	require.NoError(t, err)
	return api.NewService(data)
}

// TestTopGenresRejectsNonInteger covers the reference "ten" case and its
// relatives: anything that is not integer text is invalid, and a valid
// count delegates through to the ranked result.
func TestTopGenresRejectsNonInteger(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, raw := range []string{"ten", "10.5", "", "1e3", "-2"} {
		_, err := svc.TopGenres(ctx, raw)
		require.ErrorIs(t, err, corpus.ErrInvalidArgument, "count %q", raw)
	}

	ranked, err := svc.TopGenres(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, []corpus.GenreCount{{Genre: "Drama", Count: 2}}, ranked)
}

// TestFilterByHeightRejectsNonNumericBounds covers the reference "short"
// case for both bounds; a valid call delegates to the core filter.
func TestFilterByHeightRejectsNonNumericBounds(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.FilterByHeight(ctx, "All", "short", "200")
	require.ErrorIs(t, err, corpus.ErrInvalidArgument)
	_, err = svc.FilterByHeight(ctx, "All", "0", "very tall")
	require.ErrorIs(t, err, corpus.ErrInvalidArgument)
	_, err = svc.HeightDistribution(ctx, "All", "NaN", "200")
	require.ErrorIs(t, err, corpus.ErrInvalidArgument)

	records, err := svc.FilterByHeight(ctx, "All", "0", "300")
	require.NoError(t, err)
	require.Len(t, records, 1)
}

// TestParseCount pins the coercion rules down directly.
func TestParseCount(t *testing.T) {
	n, err := api.ParseCount("count", " 12 ")
	require.NoError(t, err)
	require.Equal(t, 12, n)

	_, err = api.ParseCount("count", "-1")
	require.ErrorIs(t, err, corpus.ErrInvalidArgument)
	_, err = api.ParseCount("count", "0x10")
	require.ErrorIs(t, err, corpus.ErrInvalidArgument)
}

// TestParseHeight accepts decimal text and rejects the non-finite values
// ParseFloat would otherwise let through.
func TestParseHeight(t *testing.T) {
	v, err := api.ParseHeight("min height", "1.75")
	require.NoError(t, err)
	require.InDelta(t, 1.75, v, 1e-9)

	for _, raw := range []string{"short", "", "NaN", "+Inf"} {
		_, err := api.ParseHeight("min height", raw)
		require.ErrorIs(t, err, corpus.ErrInvalidArgument, "height %q", raw)
	}
}
