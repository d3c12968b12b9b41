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

// Package corpus, this file: the Dataset aggregate. NewDataset is the one
// constructor: it loads both tables exactly once and returns an immutable
// value that every query reads from. There is no partial-load state — the
// constructor either returns a fully populated Dataset or an error and
// nothing else ever writes to the tables. Construction from fixture paths
// is how the test suite injects small synthetic corpora.
//
// Structs:
//   - Dataset: the loaded movie and character tables plus telemetry handles.
//
// Functions:
//   - NewDataset: load both raw files and construct the Dataset.
package corpus

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this package's tracer and meter.
const instrumentationName = "github.com/julianbeese/Group-11/internal/corpus"

// Dataset holds the two loaded metadata tables. The tables are immutable
// after construction: queries only ever read them, so a single Dataset may
// safely serve concurrent readers without locking.
type Dataset struct {
	SessionID string // Unique id for this load, stamped on diagnostics.

	movies     []MovieRecord
	characters []CharacterRecord

	tracer      trace.Tracer
	decodeSkips metric.Int64Counter
}

// NewDataset loads the movie and character metadata files and returns the
// immutable Dataset the aggregation queries run against.
//
// Inputs:
//   - ctx: used for the load span and the success diagnostic.
//   - moviePath: path to the tab-separated movie metadata file.
//   - characterPath: path to the tab-separated character metadata file.
//
// Outputs:
//   - *Dataset: the fully loaded dataset.
//   - error: ErrDataUnavailable when either file is missing or malformed.
func NewDataset(ctx context.Context, moviePath string, characterPath string) (*Dataset, error) {
	tracer := otel.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, "corpus.load")
	defer span.End()

	movies, err := loadMovies(moviePath)
	if err != nil {
		return nil, err
	}
	characters, err := loadCharacters(characterPath)
	if err != nil {
		return nil, err
	}

	meter := otel.Meter(instrumentationName)
	skips, err := meter.Int64Counter("corpus.decode.skips",
		metric.WithDescription("records excluded from an aggregation because an embedded mapping field failed to decode"))
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		SessionID:   uuid.NewString(),
		movies:      movies,
		characters:  characters,
		tracer:      tracer,
		decodeSkips: skips,
	}

	span.SetAttributes(
		attribute.Int("corpus.movies", len(d.movies)),
		attribute.Int("corpus.characters", len(d.characters)),
	)
	slog.InfoContext(ctx, "datasets loaded successfully",
		"session", d.SessionID,
		"movies", len(d.movies),
		"characters", len(d.characters))
	return d, nil
}

// Movies returns the loaded movie table. Callers must treat the slice as
// read-only.
func (d *Dataset) Movies() []MovieRecord { return d.movies }

// Characters returns the loaded character table. Callers must treat the
// slice as read-only.
func (d *Dataset) Characters() []CharacterRecord { return d.characters }

// Genders returns the distinct non-empty actor gender values present in the
// character table, in first-seen order. The presentation shell prepends
// "All" to build its filter choices.
func (d *Dataset) Genders() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range d.characters {
		g := d.characters[i].ActorGender
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
