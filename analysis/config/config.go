// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains the options of the tool.
// If some field is not defined in the config file, it will be empty/zero in the struct.
// private fields are not populated from a yaml file, but computed after initialization
type Config struct {
	Options `yaml:"options"`

	sourceFile string
}

// Options are the user-settable options.
type Options struct {
	// LogLevel controls the verbosity of the tool
	LogLevel int `yaml:"log-level"`

	// Color enables bold section titles when the output is a terminal
	Color bool `yaml:"color"`

	// SanitizeNames escapes non-printable characters in module, global and function names before printing them.
	// Names are printed raw by default.
	SanitizeNames bool `yaml:"sanitize-names"`

	// ReportCallGraph adds a CALL GRAPH section after the summary, listing direct call edges, indirect call sites
	// and recursive groups of functions
	ReportCallGraph bool `yaml:"report-callgraph"`

	// Suppress warnings
	SilenceWarn bool `yaml:"silence-warn"`
}

// NewDefault returns a default config.
func NewDefault() *Config {
	return &Config{
		sourceFile: "",
		Options: Options{
			LogLevel:        int(InfoLevel),
			Color:           false,
			SanitizeNames:   false,
			ReportCallGraph: false,
			SilenceWarn:     false,
		},
	}
}

// Load reads a configuration from a file
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	return Parse(filename, b)
}

// Parse parses the yaml contents b of the config file filename.
func Parse(filename string, b []byte) (*Config, error) {
	cfg := NewDefault()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %w", filename, err)
	}

	cfg.sourceFile = filename

	// If logLevel has not been specified (i.e. it is 0) set the default to Info
	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}
	if cfg.LogLevel < int(ErrLevel) || cfg.LogLevel > int(TraceLevel) {
		return nil, fmt.Errorf("invalid log-level %d in %s, expected a value between %d and %d",
			cfg.LogLevel, filename, ErrLevel, TraceLevel)
	}
	if cfg.SilenceWarn && cfg.LogLevel >= int(WarnLevel) {
		cfg.LogLevel = int(ErrLevel)
	}

	return cfg, nil
}

// SourceFile returns the name of the file the config has been loaded from. Empty for default configs.
func (c Config) SourceFile() string {
	return c.sourceFile
}

