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

// Package render is the thin, stateless presentation shell: it turns the
// aggregators' tabular results into aligned text tables and horizontal bar
// charts for the terminal. Nothing in here computes — every number it
// prints came out of the aggregation core unchanged.
package render

import (
	"fmt"
	"strings"
)

// barWidth is the maximum bar length in characters.
const barWidth = 50

// Table renders rows as a left-aligned text table with a header rule.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	total := 0
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", total+2*(len(headers)-1)))
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// BarPoint is one labeled value of a bar chart.
type BarPoint struct {
	Label string
	Value float64
}

// BarChart renders points as a horizontal bar chart, scaling the longest
// bar to barWidth characters. A non-empty title prints above the chart.
func BarChart(title string, points []BarPoint) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteString("\n")
	}
	if len(points) == 0 {
		b.WriteString("(no data)\n")
		return b.String()
	}

	maxLabel, maxValue := 0, 0.0
	for _, p := range points {
		if len(p.Label) > maxLabel {
			maxLabel = len(p.Label)
		}
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	for _, p := range points {
		bar := 0
		if maxValue > 0 {
			bar = int(p.Value / maxValue * barWidth)
		}
		if bar == 0 && p.Value > 0 {
			bar = 1
		}
		b.WriteString(fmt.Sprintf("%-*s  %s %g\n",
			maxLabel, p.Label, strings.Repeat("#", bar), p.Value))
	}
	return b.String()
}
