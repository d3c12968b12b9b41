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

package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/julianbeese/Group-11/internal/render"
)

func TestTable(t *testing.T) {
	out := render.Table([]string{"Genre", "Count"}, [][]string{
		{"Drama", "3"},
		{"Comedy", "2"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "Genre"))
	require.Contains(t, lines[2], "Drama")
	require.Contains(t, lines[3], "Comedy")
}

func TestBarChartScalesToLongestBar(t *testing.T) {
	out := render.BarChart("Ranking", []render.BarPoint{
		{Label: "Drama", Value: 100},
		{Label: "Comedy", Value: 50},
		{Label: "Rare", Value: 1},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "Ranking", lines[0])
	require.Equal(t, 50, strings.Count(lines[1], "#"))
	require.Equal(t, 25, strings.Count(lines[2], "#"))
	// A tiny non-zero value still draws a visible bar.
	require.Equal(t, 1, strings.Count(lines[3], "#"))
}

func TestBarChartEmpty(t *testing.T) {
	out := render.BarChart("Nothing", nil)
	require.Contains(t, out, "(no data)")
}
