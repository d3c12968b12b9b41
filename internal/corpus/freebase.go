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
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeNameMap decodes one of the serialized id->name mapping fields
// (genres, languages, countries) into a map. The corpus stores these as
// object literals, e.g.:
//
//	{"/m/02l7c8": "Romance Film", "/m/07s9rl0": "Drama"}
//
// Most rows are valid JSON. A minority use single-quoted, Python-style
// literals; for those a second pass rewrites the quotes before decoding.
// An empty field decodes to an empty map, not an error, so a movie with no
// genre data simply contributes zero counts.
//
// Inputs:
//   - raw: the verbatim field text from the record.
//
// Outputs:
//   - map[string]string: decoded id->name pairs.
//   - error: when neither decoding attempt produces a valid mapping.
func DecodeNameMap(raw string) (map[string]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "{}" {
		return map[string]string{}, nil
	}

	out := map[string]string{}
	if err := json.Unmarshal([]byte(trimmed), &out); err == nil {
		return out, nil
	}

	// Second attempt: rewrite single-quoted literals into JSON. This only
	// fires for the legacy rows, so a blanket quote swap is acceptable:
	// freebase ids and genre names in this corpus do not contain quotes.
	rewritten := strings.ReplaceAll(trimmed, `'`, `"`)
	out = map[string]string{}
	if err := json.Unmarshal([]byte(rewritten), &out); err != nil {
		return nil, fmt.Errorf("undecodable mapping literal %q: %w", truncateForLog(trimmed), err)
	}
	return out, nil
}

// truncateForLog keeps decode-skip diagnostics to a readable length.
func truncateForLog(in string) string {
	const max = 64
	if len(in) <= max {
		return in
	}
	return in[:max] + "..."
}
