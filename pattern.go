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
	"regexp"
	"strings"
	"sync"
)

// patternCache maps glob patterns to their compiled expressions.
// Patterns come from templates, so the set is small and fixed.
var patternCache sync.Map

// MatchPattern reports whether uri matches the glob pattern.
//
// A * matches any run of characters, including none and including "/".
// Every other character matches itself. Matching is case-sensitive and
// covers the whole URI:
//
//	MatchPattern("users/*", "users/42/edit") // true
//	MatchPattern("users/*", "users")         // false
//	MatchPattern("users", "users/42")        // false
func MatchPattern(pattern, uri string) bool {
	if pattern == uri {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}

	return compilePattern(pattern).MatchString(uri)
}

// compilePattern translates a glob into an anchored regular expression.
// Quoted literals cannot produce an invalid expression.
func compilePattern(pattern string) *regexp.Regexp {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}

	parts := strings.Split(pattern, "*")
	for i := range parts {
		parts[i] = regexp.QuoteMeta(parts[i])
	}
	re := regexp.MustCompile(`^` + strings.Join(parts, ".*") + `\z`)

	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}
