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

// Package corpus, this file: the record structs for the two raw metadata
// tables. Both mirror the raw TSV columns one-to-one and carry the field
// text verbatim. Nothing here is interpreted at load time: numeric columns
// (revenue, runtime, actor height) and the serialized mapping columns
// (languages, countries, genres) stay raw so a single malformed cell can
// never poison the load. Each query coerces and decodes only the fields it
// needs, skipping records that do not cooperate.
//
// Records are immutable after load: the loader builds the slices once and
// no aggregation ever writes to them, which is what makes the tables safe
// to share across concurrent readers.
//
// Structs:
//   - MovieRecord: one row of movie.metadata.tsv (8 columns).
//   - CharacterRecord: one row of character.metadata.tsv (13 columns).
package corpus

// MovieRecord is one row of the movie metadata table. The Languages,
// Countries and Genres fields hold serialized id->name mappings exactly as
// they appear in the raw file; decode them with DecodeNameMap.
type MovieRecord struct {
	MovieID     string // Wikipedia movie id, the table's identifier column.
	Title       string // The movie's display title.
	ReleaseDate string // Release date text, e.g. "2001-08-24"; may be empty.
	Revenue     string // Box-office revenue text; frequently empty.
	Runtime     string // Runtime in minutes as text; may be malformed.
	Languages   string // Serialized mapping of freebase id -> language name.
	Countries   string // Serialized mapping of freebase id -> country name.
	Genres      string // Serialized mapping of freebase id -> genre name.
}

// CharacterRecord is one row of the character metadata table, following the
// 13-field freebase schema. ActorHeight is free-form text and may be
// malformed or missing; only numerically coercible values participate in
// height aggregations. FreebaseMovieID links a character to its movie, but
// the link is not enforced: grouping is driven by this table alone.
type CharacterRecord struct {
	WikiCharacterID   string // Wikipedia id of the movie the character appears in.
	FreebaseMovieID   string // Freebase id of the movie; the grouping key for actor counts.
	ReleaseDate       string // Movie release date as recorded on the character row.
	CharacterName     string // Name of the character; may be empty.
	ActorDOB          string // Actor date of birth text.
	ActorGender       string // Actor gender code, e.g. "F" or "M"; may be empty.
	ActorHeight       string // Raw actor height text, typically meters, e.g. "1.75".
	ActorEthnicity    string // Freebase id of the actor's ethnicity.
	ActorName         string // Actor display name.
	ActorAgeAtRelease string // Actor age at movie release as text.
	FreebaseCharMap1  string // Freebase character/actor map id.
	FreebaseCharMap2  string // Freebase character id.
	FreebaseCharMap3  string // Freebase actor id.
}

// movieColumnCount and characterColumnCount are the declared schemas of the
// two raw files. A row with any other field count fails the load: the
// loader never substitutes a default schema for a mismatched file, because
// silently shifted columns produce wrong aggregations instead of errors.
const (
	movieColumnCount     = 8
	characterColumnCount = 13
)
