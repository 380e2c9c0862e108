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

import "context"

// contextKey is the context key for the request Checker.
type contextKey struct{}

// NewContext returns a copy of ctx carrying c.
func NewContext(ctx context.Context, c *Checker) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the Checker stored in ctx.
// Without one it returns a Checker over an empty route, which never matches
// anything but the "*" pattern.
func FromContext(ctx context.Context) *Checker {
	if c, ok := ctx.Value(contextKey{}).(*Checker); ok && c != nil {
		return c
	}

	return New(nil)
}
