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

// Package corpus implements the dataset-aggregation core: loading the raw
// movie and character metadata files and answering the three analytical
// queries (genre ranking, actor-count histogram, height filtering).
// This file defines the error taxonomy shared by the whole package.
//
// Two sentinel errors cover every failure the caller can observe:
//   - ErrDataUnavailable: the raw source files are missing or corrupt. The
//     caller surfaces this to the user and stops querying; it is never
//     retried internally.
//   - ErrInvalidArgument: a query parameter failed validation. The call is
//     rejected before any aggregation work starts and the loaded tables are
//     unaffected, so other calls may proceed normally.
//
// A third condition, the "decode skip" (a single record's embedded mapping
// field fails to parse), is deliberately NOT an error value: the record is
// excluded from that one aggregation, a counter is incremented, and
// processing continues.
package corpus

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable indicates the raw dataset files could not be read or
// did not match the declared schema. Match with errors.Is.
var ErrDataUnavailable = errors.New("dataset unavailable")

// ErrInvalidArgument indicates a query parameter was rejected at the API
// boundary. Match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// dataUnavailable wraps a formatted message in ErrDataUnavailable so that
// callers can both read a meaningful description and match the sentinel.
func dataUnavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataUnavailable, fmt.Sprintf(format, args...))
}

// invalidArgument wraps a formatted message in ErrInvalidArgument.
func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
