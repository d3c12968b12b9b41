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

// Package corpus, this file: the Loader. It parses the two tab-separated,
// headerless raw files into the in-memory record tables. Parsing is a plain
// tab split rather than a CSV reader because the corpus embeds JSON object
// literals (with double quotes) inside fields, which quote-aware readers
// misinterpret; the files themselves never contain tabs inside a field.
//
// Failure contract: a missing file or a row whose field count does not match
// the declared schema yields ErrDataUnavailable. The loader never guesses a
// schema for a mismatched file, since silently shifted columns would produce
// wrong aggregations downstream.
//
// Functions:
//   - loadMovies: parse the movie metadata file into []MovieRecord.
//   - loadCharacters: parse the character metadata file into []CharacterRecord.
//   - readTabbedRows: the shared line reader both of the above delegate to.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxLineBytes bounds a single raw line. The widest rows in the corpus are
// well under 64KiB; anything larger is treated as corruption.
const maxLineBytes = 1 << 20

// readTabbedRows reads a headerless tab-separated file and returns its rows
// as field slices, enforcing an exact field count per row.
//
// Inputs:
//   - path: the file to read.
//   - want: the declared column count; any row that differs fails the load.
//
// Outputs:
//   - [][]string: one field slice per non-empty row, in file order.
//   - error: ErrDataUnavailable when the file is missing or a row
//     mismatches the schema.
func readTabbedRows(path string, want int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dataUnavailable("open %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != want {
			return nil, dataUnavailable(
				"%s line %d: %d columns, schema declares %d", path, lineNo, len(fields), want)
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, dataUnavailable("read %s: %v", path, err)
	}
	return rows, nil
}

// loadMovies parses the movie metadata file into the movie table.
func loadMovies(path string) ([]MovieRecord, error) {
	rows, err := readTabbedRows(path, movieColumnCount)
	if err != nil {
		return nil, fmt.Errorf("movie table: %w", err)
	}
	out := make([]MovieRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, MovieRecord{
			MovieID:     r[0],
			Title:       r[1],
			ReleaseDate: r[2],
			Revenue:     r[3],
			Runtime:     r[4],
			Languages:   r[5],
			Countries:   r[6],
			Genres:      r[7],
		})
	}
	return out, nil
}

// loadCharacters parses the character metadata file into the character
// table, following the canonical 13-field freebase schema.
func loadCharacters(path string) ([]CharacterRecord, error) {
	rows, err := readTabbedRows(path, characterColumnCount)
	if err != nil {
		return nil, fmt.Errorf("character table: %w", err)
	}
	out := make([]CharacterRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, CharacterRecord{
			WikiCharacterID:   r[0],
			FreebaseMovieID:   r[1],
			ReleaseDate:       r[2],
			CharacterName:     r[3],
			ActorDOB:          r[4],
			ActorGender:       r[5],
			ActorHeight:       r[6],
			ActorEthnicity:    r[7],
			ActorName:         r[8],
			ActorAgeAtRelease: r[9],
			FreebaseCharMap1:  r[10],
			FreebaseCharMap2:  r[11],
			FreebaseCharMap3:  r[12],
		})
	}
	return out, nil
}
