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
	"sort"

	"go.opentelemetry.io/otel/attribute"
)

// ActorCountBin is one row of the actor-count histogram: MovieCount movies
// have exactly ActorCount character records each.
type ActorCountBin struct {
	ActorCount int // Number of character records a movie has.
	MovieCount int // How many movies share that number.
}

// ActorCountHistogram groups the character table by movie id, sizes each
// group, then histograms those sizes: one row per distinct actor count.
// Grouping is driven by the character table alone — a character whose movie
// id has no matching movie record still counts under its own bucket, and
// the MovieCount column always sums to the number of distinct movie ids in
// the character table. Row ordering is formally unspecified; the
// implementation emits MovieCount descending (ActorCount ascending on ties)
// so repeated calls are byte-identical.
//
// Inputs:
//   - ctx: carries the query span.
//
// Outputs:
//   - []ActorCountBin: one row per distinct actor-count value observed.
func (d *Dataset) ActorCountHistogram(ctx context.Context) []ActorCountBin {
	_, span := d.tracer.Start(ctx, "corpus.actor_count_histogram")
	defer span.End()

	perMovie := make(map[string]int)
	for i := range d.characters {
		perMovie[d.characters[i].FreebaseMovieID]++
	}

	perCount := make(map[int]int)
	for _, actors := range perMovie {
		perCount[actors]++
	}

	out := make([]ActorCountBin, 0, len(perCount))
	for actors, movies := range perCount {
		out = append(out, ActorCountBin{ActorCount: actors, MovieCount: movies})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MovieCount != out[j].MovieCount {
			return out[i].MovieCount > out[j].MovieCount
		}
		return out[i].ActorCount < out[j].ActorCount
	})

	span.SetAttributes(
		attribute.Int("corpus.actor_count.movies", len(perMovie)),
		attribute.Int("corpus.actor_count.bins", len(out)),
	)
	return out
}
