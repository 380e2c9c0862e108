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

package httpactive

import (
	"net/http"
	"reflect"
	"sync"

	"rivaas.dev/active"
)

// Mux is an http.ServeMux that installs an active.Checker for each request.
type Mux struct {
	mux  *http.ServeMux
	opts []active.Option

	mu     sync.RWMutex
	routes map[string]routeMeta
}

// routeMeta is the name and action recorded for one pattern.
type routeMeta struct {
	name   string
	action string
}

// Entry is a registered pattern. Use it to name the route.
type Entry struct {
	mux     *Mux
	pattern string
}

// NewMux returns an empty Mux. The options apply to every Checker it creates.
func NewMux(opts ...active.Option) *Mux {
	return &Mux{
		mux:    http.NewServeMux(),
		opts:   opts,
		routes: make(map[string]routeMeta),
	}
}

// Handle registers handler for pattern, as http.ServeMux.Handle does.
func (m *Mux) Handle(pattern string, handler http.Handler) *Entry {
	m.mux.Handle(pattern, handler)
	return m.record(pattern, handlerAction(handler))
}

// HandleFunc registers handler for pattern, as http.ServeMux.HandleFunc does.
func (m *Mux) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) *Entry {
	m.mux.HandleFunc(pattern, handler)
	return m.record(pattern, active.ActionOf(handler))
}

func (m *Mux) record(pattern, action string) *Entry {
	m.mu.Lock()
	m.routes[pattern] = routeMeta{action: action}
	m.mu.Unlock()

	return &Entry{mux: m, pattern: pattern}
}

// Name sets the route name for the entry's pattern.
func (e *Entry) Name(name string) *Entry {
	e.mux.mu.Lock()
	meta := e.mux.routes[e.pattern]
	meta.name = name
	e.mux.routes[e.pattern] = meta
	e.mux.mu.Unlock()

	return e
}

// Action overrides the action identifier for the entry's pattern.
func (e *Entry) Action(action string) *Entry {
	e.mux.mu.Lock()
	meta := e.mux.routes[e.pattern]
	meta.action = action
	e.mux.routes[e.pattern] = meta
	e.mux.mu.Unlock()

	return e
}

// ServeHTTP resolves the route, stores its Checker in the request context and
// dispatches to the registered handler.
func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, pattern := m.mux.Handler(r)

	m.mu.RLock()
	meta := m.routes[pattern]
	m.mu.RUnlock()

	route := active.NewRoute(active.PathURI(r.URL.Path), meta.name, meta.action)
	checker := active.New(route, m.opts...)

	m.mux.ServeHTTP(w, r.WithContext(active.NewContext(r.Context(), checker)))
}

// handlerAction derives the action of an http.Handler. Handler values that
// are not functions are named after their type and ServeHTTP.
func handlerAction(h http.Handler) string {
	if fn, ok := h.(http.HandlerFunc); ok {
		return active.ActionOf(fn)
	}

	t := reflect.TypeOf(h)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return ""
	}

	return t.String() + "@ServeHTTP"
}
