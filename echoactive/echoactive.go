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

package echoactive

import (
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"rivaas.dev/active"
)

// ContextKey is the echo context key holding the request Checker.
const ContextKey = "rivaas.active"

// Option defines functional options for echoactive middleware configuration.
type Option func(*config)

// config holds the configuration for the echoactive middleware.
type config struct {
	// actions overrides action identifiers, keyed by "METHOD /path"
	actions map[string]string

	// checkerOpts are applied to every Checker
	checkerOpts []active.Option
}

// defaultConfig returns the default configuration for echoactive middleware.
func defaultConfig() *config {
	return &config{
		actions: make(map[string]string),
	}
}

// routeMeta is the name and action recorded for one route.
type routeMeta struct {
	name   string
	action string
}

// New returns a middleware that stores an active.Checker for the matched route.
// Register it with e.Use so it runs after routing.
func New(opts ...Option) echo.MiddlewareFunc {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var (
		once  sync.Once
		index map[string]routeMeta
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			once.Do(func() {
				index = buildIndex(c.Echo().Routes(), cfg.actions)
			})

			req := c.Request()
			checker := newChecker(index, req.Method, c.Path(), req.URL.Path, cfg.checkerOpts)

			c.Set(ContextKey, checker)
			c.SetRequest(req.WithContext(active.NewContext(req.Context(), checker)))

			return next(c)
		}
	}
}

// newChecker builds the Checker for a request. Routes registered after the
// first request are missing from the index and only match by pattern.
func newChecker(index map[string]routeMeta, method, routePath, requestPath string, opts []active.Option) *active.Checker {
	meta, ok := index[method+" "+routePath]
	checker := active.New(active.NewRoute(active.PathURI(requestPath), meta.name, meta.action), opts...)
	if !ok && routePath != "" {
		checker.Logger().Debug("active route not indexed", "method", method, "path", routePath)
	}

	return checker
}

func buildIndex(routes []*echo.Route, actions map[string]string) map[string]routeMeta {
	index := make(map[string]routeMeta, len(routes))
	for _, r := range routes {
		key := r.Method + " " + r.Path

		var meta routeMeta
		if isHandlerSymbol(r.Name) {
			meta.action = active.ActionFromFuncName(r.Name)
		} else {
			meta.name = r.Name
		}
		if action, ok := actions[key]; ok {
			meta.action = action
		}
		index[key] = meta
	}

	return index
}

// isHandlerSymbol reports whether an echo route name is the default one echo
// derives from the handler function rather than an application name.
func isHandlerSymbol(name string) bool {
	return strings.Contains(name, "/") ||
		strings.Contains(name, "(") ||
		strings.HasSuffix(name, "-fm") ||
		strings.HasPrefix(name, "main.")
}

// Get returns the request Checker.
// Without the middleware it returns a Checker that never matches.
func Get(c echo.Context) *active.Checker {
	if checker, ok := c.Get(ContextKey).(*active.Checker); ok {
		return checker
	}

	return active.FromContext(c.Request().Context())
}
