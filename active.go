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
	"log/slog"
	"slices"
	"strings"
)

// Provider is a read-only view of the route matched for the current request.
// Empty strings mean the information is not available.
type Provider interface {
	// URI returns the route URI, e.g. "posts/42".
	URI() string

	// Name returns the symbolic route name, e.g. "posts.show".
	Name() string

	// Action returns the action identifier, e.g. "web.PostController@Show".
	Action() string
}

// Route is an immutable Provider snapshot built once per request.
type Route struct {
	uri    string
	name   string
	action string
}

// NewRoute creates a Route from its URI, name and action identifier.
func NewRoute(uri, name, action string) Route {
	return Route{uri: uri, name: name, action: action}
}

// URI returns the route URI.
func (r Route) URI() string { return r.uri }

// Name returns the route name.
func (r Route) Name() string { return r.name }

// Action returns the action identifier.
func (r Route) Action() string { return r.action }

// PathURI converts a request path into the route URI form used for pattern
// matching: surrounding slashes are removed and the root becomes "/".
//
//	PathURI("/posts/42/") // "posts/42"
//	PathURI("/")          // "/"
func PathURI(path string) string {
	uri := strings.Trim(path, "/")
	if uri == "" {
		return "/"
	}
	return uri
}

// Checker returns the active class when the current route matches.
// It holds no mutable state and is safe for concurrent use.
type Checker struct {
	route Provider
	cfg   *config
	class string
}

// New returns a Checker for the given route.
// A nil provider behaves like a route without URI, name or action.
func New(p Provider, opts ...Option) *Checker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if p == nil {
		p = Route{}
	}

	return &Checker{route: p, cfg: cfg, class: cfg.class}
}

// WithClass returns a copy of the Checker that reports matches with class.
//
// Example:
//
//	c.WithClass("current").Route("home")
func (c *Checker) WithClass(class string) *Checker {
	cp := *c
	cp.class = class
	return &cp
}

// Class returns the class reported on a match.
func (c *Checker) Class() string {
	return c.class
}

// Current returns the route the Checker compares against.
func (c *Checker) Current() Provider {
	return c.route
}

// Logger returns the logger configured with [WithLogger].
func (c *Checker) Logger() *slog.Logger {
	return c.cfg.logger
}

func (c *Checker) result(matched bool) string {
	if matched {
		return c.class
	}
	return ""
}

// Pattern returns the class if the route URI matches any of the glob patterns.
// See [MatchPattern] for the pattern syntax.
func (c *Checker) Pattern(patterns ...string) string {
	return c.result(c.IsPattern(patterns...))
}

// IsPattern reports whether the route URI matches any of the patterns.
func (c *Checker) IsPattern(patterns ...string) bool {
	uri := c.route.URI()
	for _, p := range patterns {
		if MatchPattern(p, uri) {
			c.cfg.logger.Debug("active pattern matched", "uri", uri, "pattern", p)
			return true
		}
	}
	c.cfg.logger.Debug("active pattern not matched", "uri", uri, "patterns", patterns)

	return false
}

// Route returns the class if the route name is one of names.
// Routes without a name never match.
func (c *Checker) Route(names ...string) string {
	return c.result(c.IsRoute(names...))
}

// IsRoute reports whether the route name is one of names.
func (c *Checker) IsRoute(names ...string) bool {
	name := c.route.Name()
	if name == "" {
		c.cfg.logger.Debug("active route skipped", "reason", "unnamed route")
		return false
	}
	matched := slices.Contains(names, name)
	c.cfg.logger.Debug("active route checked", "name", name, "names", names, "matched", matched)

	return matched
}

// Action returns the class if the full action identifier equals one of actions.
func (c *Checker) Action(actions ...string) string {
	return c.result(c.IsAction(actions...))
}

// IsAction reports whether the action identifier equals one of actions.
func (c *Checker) IsAction(actions ...string) bool {
	action := c.route.Action()
	matched := action != "" && slices.Contains(actions, action)
	c.cfg.logger.Debug("active action checked", "action", action, "actions", actions, "matched", matched)

	return matched
}

// Controller returns the class if the derived controller name equals
// controller and the derived method name is not one of excluded.
//
// Exclusions keep a link inactive on specific actions of an otherwise
// matching controller:
//
//	// "New post" link is not active while on PostController@store
//	c.Controller("Post", "store")
func (c *Checker) Controller(controller string, excluded ...string) string {
	return c.result(c.IsController(controller, excluded...))
}

// IsController reports whether the controller matches and the method is not excluded.
func (c *Checker) IsController(controller string, excluded ...string) bool {
	current, ok := c.ControllerName()
	if !ok || current != controller {
		c.cfg.logger.Debug("active controller not matched", "controller", current, "want", controller)
		return false
	}

	// An action without a method part derives the empty method name.
	method, _ := c.MethodName()
	if slices.Contains(excluded, method) {
		c.cfg.logger.Debug("active controller excluded", "controller", current, "method", method)
		return false
	}
	c.cfg.logger.Debug("active controller matched", "controller", current, "method", method)

	return true
}

// Controllers returns the class if the derived controller name is one of controllers.
func (c *Checker) Controllers(controllers ...string) string {
	return c.result(c.IsControllers(controllers...))
}

// IsControllers reports whether the derived controller name is one of controllers.
func (c *Checker) IsControllers(controllers ...string) bool {
	current, ok := c.ControllerName()
	matched := ok && slices.Contains(controllers, current)
	c.cfg.logger.Debug("active controllers checked", "controller", current, "controllers", controllers, "matched", matched)

	return matched
}

// ControllerName derives the controller name from the action identifier.
// It reports false when the route has no action.
//
//	"PostController@store"                 -> "Post"
//	"App\Controllers\PostController@store" -> "App\s\Post"
//
// Every "Controller" is removed, including the one inside a "Controllers"
// namespace segment. Use [TrimAffixes] to strip only the suffix.
func (c *Checker) ControllerName() (string, bool) {
	action := c.route.Action()
	if action == "" {
		return "", false
	}
	controller, _, _ := ParseCallback(action)

	return trimController(controller, c.cfg.trimMode), true
}

// MethodName derives the method name from the action identifier.
// It reports false when the route has no action or the action has no "@".
//
//	"HomeController@getIndex" -> "Index"
func (c *Checker) MethodName() (string, bool) {
	action := c.route.Action()
	if action == "" {
		return "", false
	}
	_, method, ok := ParseCallback(action)
	if !ok {
		return "", false
	}

	return trimMethod(method, c.cfg.verbs, c.cfg.trimMode), true
}
