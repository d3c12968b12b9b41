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

package corpus

import (
	"context"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel/attribute"
)

// GenreCount is one row of the genre frequency ranking.
type GenreCount struct {
	Genre string // The human-readable genre name.
	Count int    // Number of movies tagged with the genre.
}

// TopGenres decodes every movie's genre mapping, tallies genre names across
// the whole movie table and returns the n most frequent, ordered by count
// descending. A movie whose genre field fails to decode is skipped (counted
// on the decode-skip metric, logged at debug) and the remaining movies are
// still tallied. Equal counts order by first appearance in the movie table,
// which is arbitrary but stable, so repeated calls over an unmodified
// dataset return identical output.
//
// Inputs:
//   - ctx: carries the query span.
//   - n: how many rows to return; must be non-negative.
//
// Outputs:
//   - []GenreCount: exactly min(n, distinct genres) rows, count descending.
//   - error: ErrInvalidArgument when n is negative.
func (d *Dataset) TopGenres(ctx context.Context, n int) ([]GenreCount, error) {
	if n < 0 {
		return nil, invalidArgument("genre count must be non-negative, got %d", n)
	}

	ctx, span := d.tracer.Start(ctx, "corpus.top_genres")
	defer span.End()

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	skipped := 0
	for i := range d.movies {
		raw := d.movies[i].Genres
		mapping, err := DecodeNameMap(raw)
		if err != nil {
			skipped++
			d.decodeSkips.Add(ctx, 1)
			slog.DebugContext(ctx, "skipping movie with undecodable genre field",
				"movie_id", d.movies[i].MovieID, "error", err)
			continue
		}
		// Tally the mapping's values: the ranking is over genre names, the
		// freebase ids are only keys. Iterate in sorted-key order so the
		// first-seen tie-break index does not depend on map iteration.
		ids := make([]string, 0, len(mapping))
		for id := range mapping {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			name := mapping[id]
			if _, ok := firstSeen[name]; !ok {
				firstSeen[name] = len(firstSeen)
			}
			counts[name]++
		}
	}

	ranked := make([]GenreCount, 0, len(counts))
	for genre, count := range counts {
		ranked = append(ranked, GenreCount{Genre: genre, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Genre] < firstSeen[ranked[j].Genre]
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	span.SetAttributes(
		attribute.Int("corpus.genres.requested", n),
		attribute.Int("corpus.genres.returned", len(ranked)),
		attribute.Int("corpus.genres.skipped_records", skipped),
	)
	return ranked, nil
}
