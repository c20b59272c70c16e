// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the dcmlazy settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of the dcmlazy command. Flags given on the command line take
// precedence over these values.
type Config struct {
	LogLevel         string `env:"DCMLAZY_LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"DCMLAZY_LOG_FORMAT" envDefault:"text"`
	DefaultCharset   string `env:"DCMLAZY_DEFAULT_CHARSET"`
	MaxInflatedBytes int64  `env:"DCMLAZY_MAX_INFLATED_BYTES" envDefault:"1073741824"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxInflatedBytes <= 0 {
		return Config{}, fmt.Errorf("DCMLAZY_MAX_INFLATED_BYTES must be positive, got %d", cfg.MaxInflatedBytes)
	}
	return cfg, nil
}
