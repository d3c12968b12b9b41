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

// Package api is the raw-parameter boundary between the presentation layer
// and the aggregation core. Presentation surfaces (the CLI, an interactive
// shell) hand parameters over as uninterpreted strings; this package
// coerces them to the types the core expects and rejects anything that does
// not coerce with corpus.ErrInvalidArgument — before any aggregation work
// begins. A rejected call never touches the loaded tables, so other calls
// are unaffected.
//
// Structs:
//   - Service: wraps a corpus.Dataset with string-parameter operations.
//
// Functions:
//   - ParseCount: strict integer coercion for the genre ranking size.
//   - ParseHeight: strict float coercion for the height range bounds.
package api

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/julianbeese/Group-11/internal/corpus"
)

// Service exposes the three aggregation operations with raw string
// parameters. It is stateless beyond the dataset reference and safe for
// concurrent use.
type Service struct {
	Data *corpus.Dataset
}

// NewService wraps a loaded dataset.
func NewService(data *corpus.Dataset) *Service {
	return &Service{Data: data}
}

// ParseCount coerces a raw count parameter to a non-negative integer.
// Anything that is not the text of a base-10 integer — "ten", "10.5", "",
// "0x10" — is rejected with corpus.ErrInvalidArgument, as is a negative
// value.
func ParseCount(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", corpus.ErrInvalidArgument, name, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative, got %d", corpus.ErrInvalidArgument, name, n)
	}
	return n, nil
}

// ParseHeight coerces a raw height bound to a finite float. Non-numeric
// text such as "short" is rejected with corpus.ErrInvalidArgument.
func ParseHeight(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be numeric, got %q", corpus.ErrInvalidArgument, name, raw)
	}
	return v, nil
}

// TopGenres validates the raw count and delegates to the genre aggregator.
func (s *Service) TopGenres(ctx context.Context, count string) ([]corpus.GenreCount, error) {
	n, err := ParseCount("count", count)
	if err != nil {
		return nil, err
	}
	return s.Data.TopGenres(ctx, n)
}

// ActorCountHistogram delegates to the actor-count aggregator. There are no
// parameters to validate.
func (s *Service) ActorCountHistogram(ctx context.Context) []corpus.ActorCountBin {
	return s.Data.ActorCountHistogram(ctx)
}

// FilterByHeight validates the raw height bounds and delegates to the
// height filter. The gender parameter is inherently a string and passes
// through unvalidated; any value that matches no record simply filters
// everything out.
func (s *Service) FilterByHeight(ctx context.Context, gender, minHeight, maxHeight string) ([]corpus.CharacterRecord, error) {
	lo, err := ParseHeight("min height", minHeight)
	if err != nil {
		return nil, err
	}
	hi, err := ParseHeight("max height", maxHeight)
	if err != nil {
		return nil, err
	}
	return s.Data.FilterByHeight(ctx, gender, lo, hi)
}

// HeightDistribution validates the raw height bounds and delegates to the
// histogram/statistics companion of the height filter.
func (s *Service) HeightDistribution(ctx context.Context, gender, minHeight, maxHeight string) (*corpus.HeightDistribution, error) {
	lo, err := ParseHeight("min height", minHeight)
	if err != nil {
		return nil, err
	}
	hi, err := ParseHeight("max height", maxHeight)
	if err != nil {
		return nil, err
	}
	return s.Data.HeightDistribution(ctx, gender, lo, hi)
}
