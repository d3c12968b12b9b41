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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/julianbeese/Group-11/internal/corpus"
)

// TestDecodeNameMap runs the decoder across the literal shapes the corpus
// actually contains: plain JSON, multi-entry JSON, the legacy single-quoted
// variant, the empty encodings, and the garbage that must fail.
func TestDecodeNameMap(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    map[string]string
		wantErr bool
	}{
		{
			name: "json object",
			raw:  `{"/m/07s9rl0": "Drama"}`,
			want: map[string]string{"/m/07s9rl0": "Drama"},
		},
		{
			name: "multi entry",
			raw:  `{"/m/07s9rl0": "Drama", "/m/05p553": "Comedy"}`,
			want: map[string]string{"/m/07s9rl0": "Drama", "/m/05p553": "Comedy"},
		},
		{
			name: "single quoted legacy literal",
			raw:  `{'/m/07s9rl0': 'Drama'}`,
			want: map[string]string{"/m/07s9rl0": "Drama"},
		},
		{name: "empty object", raw: `{}`, want: map[string]string{}},
		{name: "empty field", raw: ``, want: map[string]string{}},
		{name: "whitespace only", raw: `   `, want: map[string]string{}},
		{name: "free text", raw: `not a mapping`, wantErr: true},
		{name: "json array", raw: `["Drama"]`, wantErr: true},
		{name: "truncated object", raw: `{"/m/07s9rl0": "Dra`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := corpus.DecodeNameMap(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
