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

// Package config, this file: the hierarchical configuration loader. It
// first reads a base configuration file and then overwrites values with a
// second, environment-specific file (e.g. .env.local.toml, .env.test.toml).
// The config directory and the runtime environment are chosen by
// environment variables, which is what lets the test suite point the whole
// application at fixture configuration without touching the real files.
//
// Functions:
//   - fileExists: a simple helper to check if a file exists.
//   - Load: populate a Config from the base and override TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Configuration loading constants: file naming pieces and the environment
// variables that select the directory and runtime.
const (
	ConfigFileBaseName  = ".env"                 // The base name for configuration files (e.g. ".env.toml").
	ConfigFileExtension = ".toml"                // The file extension for configuration files.
	ConfigSeparator     = "."                    // The separator used in override names (e.g. ".env.local.toml").
	EnvConfigFilePrefix = "MOVIES_CONFIG_PREFIX" // Environment variable for the config directory.
	EnvConfigRuntime    = "MOVIES_RUNTIME"       // Environment variable for the runtime context (e.g. "local", "test").
)

// fileExists checks if a file or directory exists at the given path.
func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// Load builds the application configuration: defaults first, then the base
// configuration file, then the environment-specific override file. Either
// file may be absent; a present file that fails to decode is an error.
//
// Outputs:
//   - *Config: the resolved configuration.
//   - error: when a configuration file exists but cannot be decoded.
func Load() (*Config, error) {
	cfg := NewConfig()

	// Read the directory path for config files from an environment variable
	// and ensure it ends with a path separator when set.
	prefix := os.Getenv(EnvConfigFilePrefix)
	if len(prefix) > 0 && !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix = prefix + string(os.PathSeparator)
	}

	// Read the runtime environment from an environment variable, defaulting
	// to "local".
	runtime := os.Getenv(EnvConfigRuntime)
	if runtime == "" {
		runtime = "local"
	}

	baseFile := prefix + ConfigFileBaseName + ConfigFileExtension
	envFile := prefix + ConfigFileBaseName + ConfigSeparator + runtime + ConfigFileExtension

	if fileExists(baseFile) {
		if _, err := toml.DecodeFile(baseFile, cfg); err != nil {
			return nil, fmt.Errorf("decode base configuration file %s: %w", baseFile, err)
		}
	}

	// Values in the environment-specific file overwrite the base values.
	if fileExists(envFile) {
		if _, err := toml.DecodeFile(envFile, cfg); err != nil {
			return nil, fmt.Errorf("decode environment configuration file %s: %w", envFile, err)
		}
	}
	return cfg, nil
}
