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

import (
	"github.com/gin-gonic/gin"

	"rivaas.dev/active"
)

// ContextKey is the gin context key holding the request Checker.
const ContextKey = "rivaas.active"

// Option defines functional options for ginactive middleware configuration.
type Option func(*config)

// config holds the configuration for the ginactive middleware.
type config struct {
	// names maps "METHOD /full/path" to a route name
	names map[string]string

	// checkerOpts are applied to every Checker
	checkerOpts []active.Option
}

// defaultConfig returns the default configuration for ginactive middleware.
func defaultConfig() *config {
	return &config{
		names: make(map[string]string),
	}
}

// New returns a middleware that stores an active.Checker for the matched route.
//
// Unmatched requests (404) get a Checker with the request URI only, so pattern
// checks still work on error pages.
func New(opts ...Option) gin.HandlerFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *gin.Context) {
		var name, action string
		if fullPath := c.FullPath(); fullPath != "" {
			name = cfg.names[c.Request.Method+" "+fullPath]
			action = active.ActionFromFuncName(c.HandlerName())
		}

		route := active.NewRoute(active.PathURI(c.Request.URL.Path), name, action)
		checker := active.New(route, cfg.checkerOpts...)

		c.Set(ContextKey, checker)
		c.Request = c.Request.WithContext(active.NewContext(c.Request.Context(), checker))

		c.Next()
	}
}

// Get returns the request Checker.
// Without the middleware it returns a Checker that never matches.
//
// Example:
//
//	func handler(c *gin.Context) {
//	    class := ginactive.Get(c).Route("posts.index")
//	}
func Get(c *gin.Context) *active.Checker {
	if v, ok := c.Get(ContextKey); ok {
		if checker, ok := v.(*active.Checker); ok {
			return checker
		}
	}

	return active.FromContext(c.Request.Context())
}
