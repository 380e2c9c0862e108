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

package rivaasactive

import (
	"sync"

	"rivaas.dev/router"

	"rivaas.dev/active"
)

// routeMeta is the name and action recorded for one route.
type routeMeta struct {
	name   string
	action string
}

// New returns a middleware that stores an active.Checker for the matched route
// in the request context. The router must be the one the middleware is
// registered on.
//
// Example:
//
//	r.Use(rivaasactive.New(r, active.WithClass("is-active")))
func New(r *router.Router, opts ...active.Option) router.HandlerFunc {
	var (
		once  sync.Once
		index map[string]routeMeta
	)

	return func(c *router.Context) {
		once.Do(func() {
			index = buildIndex(r)
		})

		checker := newChecker(index, c.Request.Method, c.RoutePattern(), c.Request.URL.Path, opts)

		c.Request = c.Request.WithContext(active.NewContext(c.Request.Context(), checker))

		c.Next()
	}
}

// newChecker builds the Checker for a request and logs routes missing from
// the index, which then only match by pattern.
func newChecker(index map[string]routeMeta, method, pattern, path string, opts []active.Option) *active.Checker {
	meta, ok := index[method+" "+pattern]
	checker := active.New(active.NewRoute(active.PathURI(path), meta.name, meta.action), opts...)
	if !ok && pattern != "" {
		checker.Logger().Debug("active route not indexed", "method", method, "path", pattern)
	}

	return checker
}

// buildIndex freezes the router so named routes can be listed.
func buildIndex(r *router.Router) map[string]routeMeta {
	r.Freeze()

	routes := r.Routes()
	index := make(map[string]routeMeta, len(routes))
	for _, info := range routes {
		index[info.Method+" "+info.Path] = routeMeta{
			action: active.ActionFromFuncName(info.HandlerName),
		}
	}

	for _, rt := range r.GetRoutes() {
		key := rt.Method() + " " + rt.Path()
		meta := index[key]
		meta.name = rt.Name()
		index[key] = meta
	}

	return index
}

// Get returns the request Checker.
// Without the middleware it returns a Checker that never matches.
func Get(c *router.Context) *active.Checker {
	return active.FromContext(c.Request.Context())
}
