// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

type OrdkitConfig struct {
	// Logging: destination and verbosity defaults, overridable by flags
	Logging LoggingConfig `yaml:"logging"`

	// Sort: default behavior of the sort command
	Sort SortConfig `yaml:"sort"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // e.g. "info", "debug"
	Dir   string `yaml:"dir"`   // e.g. "~/.ordkit/logs"; empty disables file logs
	JSON  bool   `yaml:"json"`  // JSON on stderr instead of text
}

type SortConfig struct {
	Delimiter string `yaml:"delimiter"` // empty means any run of whitespace
	Numeric   bool   `yaml:"numeric"`   // compare keys as numbers by default
}

func DefaultConfig() OrdkitConfig {
	return OrdkitConfig{
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
			JSON:  false,
		},
		Sort: SortConfig{
			Delimiter: "",
			Numeric:   false,
		},
	}
}
