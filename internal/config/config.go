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

// Package config defines the data structures for application configuration,
// loaded from TOML files. It centralizes every configurable parameter:
// application identity, the dataset source (archive URL, local directory,
// raw file names) and the download policy.
//
// Structs:
//   - Dataset: where the corpus lives remotely and locally.
//   - Download: retry and pacing policy for the one-time provisioning fetch.
//   - Config: the top-level struct aggregating all sections.
//
// Functions:
//   - NewConfig: constructor returning a Config with usable defaults.
package config

import "path/filepath"

// Dataset describes the corpus source: the remote archive it is provisioned
// from and the local directory and file names the loader reads.
type Dataset struct {
	ArchiveURL    string `toml:"archive_url"`    // The URL of the dataset archive (tar.gz).
	Dir           string `toml:"dir"`            // The local directory the archive extracts into.
	MovieFile     string `toml:"movie_file"`     // The movie metadata file name inside Dir.
	CharacterFile string `toml:"character_file"` // The character metadata file name inside Dir.
}

// MoviePath returns the full path of the movie metadata file.
func (d Dataset) MoviePath() string { return filepath.Join(d.Dir, d.MovieFile) }

// CharacterPath returns the full path of the character metadata file.
func (d Dataset) CharacterPath() string { return filepath.Join(d.Dir, d.CharacterFile) }

// Download is the provisioning fetch policy.
type Download struct {
	MaxRetries        int     `toml:"max_retries"`         // Attempts before the fetch is abandoned.
	RequestsPerSecond float64 `toml:"requests_per_second"` // Politeness pacing for attempts against the corpus host.
}

// Config represents the overall configuration for the application, loaded
// from TOML files.
type Config struct {
	// Application holds general application settings.
	Application struct {
		Name     string `toml:"name"`      // The name of the application, stamped on telemetry.
		LogLevel string `toml:"log_level"` // Minimum slog level: "debug", "info", "warn" or "error".
	} `toml:"application"`
	Dataset  Dataset  `toml:"dataset"`  // Dataset source configuration.
	Download Download `toml:"download"` // Provisioning fetch policy.
}

// NewConfig is a constructor function that creates a new Config instance
// with defaults that work for the reference corpus, so a missing override
// file still yields a runnable application.
//
// Outputs:
//   - *Config: a pointer to a new Config struct populated with defaults.
func NewConfig() *Config {
	c := &Config{}
	c.Application.Name = "movie-metadata-analytics"
	c.Application.LogLevel = "info"
	c.Dataset = Dataset{
		ArchiveURL:    "http://www.cs.cmu.edu/~ark/personas/data/MovieSummaries.tar.gz",
		Dir:           filepath.Join("data", "MovieSummaries"),
		MovieFile:     "movie.metadata.tsv",
		CharacterFile: "character.metadata.tsv",
	}
	c.Download = Download{MaxRetries: 3, RequestsPerSecond: 1}
	return c
}
