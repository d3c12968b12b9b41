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

// Package corpus, this file: the height filter and its derived
// distribution. Height is the one numerically dirty column in the corpus:
// the raw field may be empty, non-numeric, or garbage, so every query
// coerces it best-effort and silently excludes records that do not parse.
// Exclusion is not an error — a record with an unusable height simply does
// not participate.
//
// Functions:
//   - Dataset.FilterByHeight: gender + inclusive height-range filter.
//   - Dataset.HeightDistribution: histogram and summary statistics over the
//     filtered heights.
//   - coerceHeight: the shared best-effort numeric coercion.
package corpus

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// GenderAll is the sentinel gender value that disables gender filtering.
const GenderAll = "All"

// maxHistogramBins caps the height histogram resolution. The effective bin
// count is min(maxHistogramBins, number of retained records).
const maxHistogramBins = 30

// HeightBin is one bar of the height histogram.
type HeightBin struct {
	Center float64 // Bin center, rounded to one decimal for display.
	Count  int     // Number of retained records falling into the bin.
}

// HeightDistribution is the derived histogram plus summary statistics over
// a filtered set of actor heights. All fields are computed from the
// retained records only.
type HeightDistribution struct {
	Bins  []HeightBin // At most maxHistogramBins equal-width bins.
	Count int         // Number of retained records.
	Mean  float64     // Mean of the retained heights.
	Min   float64     // Smallest retained height.
	Max   float64     // Largest retained height.
}

// coerceHeight converts the raw height field to a number, best effort.
// The second return reports whether the value is usable.
func coerceHeight(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FilterByHeight returns the character records whose coerced height lies in
// the inclusive range [minHeight, maxHeight], additionally restricted to an
// exact, case-sensitive gender match unless gender is GenderAll. Records
// whose height field does not coerce are excluded rather than errored. The
// result preserves the table's relative order and shares no storage with
// it; the source table is never mutated.
//
// Inputs:
//   - ctx: carries the query span.
//   - gender: exact gender value to retain, or GenderAll for no filter.
//   - minHeight, maxHeight: the inclusive height range; NaN is rejected.
//
// Outputs:
//   - []CharacterRecord: the retained records in original relative order.
//   - error: ErrInvalidArgument for a NaN bound.
func (d *Dataset) FilterByHeight(ctx context.Context, gender string, minHeight, maxHeight float64) ([]CharacterRecord, error) {
	if math.IsNaN(minHeight) || math.IsNaN(maxHeight) {
		return nil, invalidArgument("height bounds must be numeric, got min=%v max=%v", minHeight, maxHeight)
	}

	_, span := d.tracer.Start(ctx, "corpus.filter_by_height")
	defer span.End()

	var out []CharacterRecord
	for i := range d.characters {
		rec := d.characters[i]
		h, ok := coerceHeight(rec.ActorHeight)
		if !ok {
			continue
		}
		if h < minHeight || h > maxHeight {
			continue
		}
		if gender != GenderAll && rec.ActorGender != gender {
			continue
		}
		out = append(out, rec)
	}

	span.SetAttributes(
		attribute.String("corpus.heights.gender", gender),
		attribute.Int("corpus.heights.retained", len(out)),
	)
	return out, nil
}

// HeightDistribution filters exactly like FilterByHeight and then reduces
// the retained heights to an equal-width histogram and summary statistics.
// The bin count is min(30, retained records) so a tiny result set never
// produces mostly-empty bins. An empty result yields a zero-count
// distribution with no bins.
//
// Inputs/outputs mirror FilterByHeight; the error cases are identical.
func (d *Dataset) HeightDistribution(ctx context.Context, gender string, minHeight, maxHeight float64) (*HeightDistribution, error) {
	records, err := d.FilterByHeight(ctx, gender, minHeight, maxHeight)
	if err != nil {
		return nil, err
	}

	heights := make([]float64, 0, len(records))
	for i := range records {
		// Coercion succeeds by construction: FilterByHeight already dropped
		// everything else.
		h, _ := coerceHeight(records[i].ActorHeight)
		heights = append(heights, h)
	}
	dist := &HeightDistribution{Count: len(heights)}
	if len(heights) == 0 {
		return dist, nil
	}

	sorted := append([]float64(nil), heights...)
	sort.Float64s(sorted)
	dist.Min = sorted[0]
	dist.Max = sorted[len(sorted)-1]
	sum := 0.0
	for _, h := range heights {
		sum += h
	}
	dist.Mean = sum / float64(len(heights))

	bins := maxHistogramBins
	if len(heights) < bins {
		bins = len(heights)
	}
	width := (dist.Max - dist.Min) / float64(bins)
	counts := make([]int, bins)
	for _, h := range heights {
		idx := bins - 1
		if width > 0 {
			idx = int((h - dist.Min) / width)
			// The maximum height lands exactly on the upper edge; fold it
			// into the last bin to keep the range inclusive.
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}
	dist.Bins = make([]HeightBin, bins)
	for i := 0; i < bins; i++ {
		center := dist.Min + width*(float64(i)+0.5)
		if width == 0 {
			center = dist.Min
		}
		dist.Bins[i] = HeightBin{
			Center: math.Round(center*10) / 10,
			Count:  counts[i],
		}
	}
	return dist, nil
}
