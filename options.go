// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package active

import (
	"io"
	"log/slog"
)

// DefaultClass is the class returned on a match unless [WithClass] says otherwise.
const DefaultClass = "active"

// noopLogger is used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// defaultVerbs are removed from method names when deriving them from an action.
var defaultVerbs = []string{"get", "post", "put", "delete", "show"}

// TrimMode selects how controller and method names are cleaned up.
type TrimMode int

const (
	// TrimSubstrings removes every occurrence of "Controller" and of each verb.
	// "showgetIndex" becomes "Index" and "PageControllerController" becomes "Page".
	TrimSubstrings TrimMode = iota

	// TrimAffixes removes one trailing "Controller" and one leading verb.
	TrimAffixes
)

// String returns the mode name.
func (m TrimMode) String() string {
	switch m {
	case TrimSubstrings:
		return "substrings"
	case TrimAffixes:
		return "affixes"
	default:
		return "unknown"
	}
}

// Option defines functional options for Checker configuration.
type Option func(*config)

// config holds Checker configuration. It is never mutated after New returns.
type config struct {
	// class is returned when a check matches
	class string

	// logger receives a debug record for every check
	logger *slog.Logger

	// trimMode selects substring or affix trimming
	trimMode TrimMode

	// verbs are stripped from derived method names
	verbs []string
}

// defaultConfig returns the default Checker configuration.
func defaultConfig() *config {
	return &config{
		class:    DefaultClass,
		logger:   noopLogger,
		trimMode: TrimSubstrings,
		verbs:    defaultVerbs,
	}
}

// WithClass sets the class returned on a match.
// Default: "active"
//
// Example:
//
//	active.New(route, active.WithClass("is-active"))
func WithClass(class string) Option {
	return func(cfg *config) {
		cfg.class = class
	}
}

// WithLogger sets the logger used to trace match decisions at debug level.
// A nil logger restores the default no-op logger.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	active.New(route, active.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger == nil {
			logger = noopLogger
		}
		cfg.logger = logger
	}
}

// WithTrimMode selects how controller and method names are derived from the
// action identifier.
// Default: TrimSubstrings
//
// Example:
//
//	active.New(route, active.WithTrimMode(active.TrimAffixes))
func WithTrimMode(mode TrimMode) Option {
	return func(cfg *config) {
		cfg.trimMode = mode
	}
}

// WithMethodVerbs replaces the verbs stripped from derived method names.
// Verbs are applied in the given order. Empty strings are ignored.
// Default: "get", "post", "put", "delete", "show"
//
// Example for exported Go method names:
//
//	active.New(route,
//	    active.WithTrimMode(active.TrimAffixes),
//	    active.WithMethodVerbs("Get", "Post", "Put", "Delete", "Show"),
//	)
func WithMethodVerbs(verbs ...string) Option {
	return func(cfg *config) {
		cleaned := make([]string, 0, len(verbs))
		for _, v := range verbs {
			if v != "" {
				cleaned = append(cleaned, v)
			}
		}
		cfg.verbs = cleaned
	}
}
