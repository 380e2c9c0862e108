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

package ginactive

import "rivaas.dev/active"

// WithNames sets route names keyed by "METHOD /full/path", using the path as
// registered with gin (c.FullPath()).
//
// Example:
//
//	ginactive.New(ginactive.WithNames(map[string]string{
//	    "GET /posts/:id": "posts.show",
//	}))
func WithNames(names map[string]string) Option {
	return func(cfg *config) {
		for k, v := range names {
			cfg.names[k] = v
		}
	}
}

// WithCheckerOptions passes options to every Checker the middleware creates.
//
// Example:
//
//	ginactive.New(ginactive.WithCheckerOptions(active.WithClass("is-active")))
func WithCheckerOptions(opts ...active.Option) Option {
	return func(cfg *config) {
		cfg.checkerOpts = append(cfg.checkerOpts, opts...)
	}
}
