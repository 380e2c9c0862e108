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

// Package active decides whether a navigation element should carry an
// "active" CSS class for the route currently being served.
//
// A [Checker] compares the current route against caller-supplied values and
// returns the configured class when they match, or an empty string when they
// don't. It never returns errors: missing route information simply means
// "not active".
//
// # Basic Usage
//
//	route := active.NewRoute("posts/42", "posts.show", "web.PostController@Show")
//	c := active.New(route)
//
//	c.Pattern("posts/*")          // "active"
//	c.Route("posts.index")        // ""
//	c.Controller("web.Post")      // "active"
//	c.WithClass("current").Route("posts.show") // "current"
//
// # Matching Kinds
//
//   - Pattern: glob match on the route URI, where * matches any run of characters
//   - Route: exact match on the route name
//   - Action: exact match on the full action identifier ("Controller@method")
//   - Controller: match on the controller part, with optional excluded methods
//   - Controllers: match on any of several controller names
//
// # Action Identifiers
//
// An action identifier has the form "Qualified.Name@method". Controller and
// method names are derived from it by splitting on the last "@". By default
// every occurrence of "Controller" is removed from the controller part and
// every occurrence of "get", "post", "put", "delete" and "show" is removed from
// the method part. Use [WithTrimMode] with [TrimAffixes] to strip only a
// trailing suffix and a single leading verb instead.
//
// For Go handlers, [ActionOf] builds the identifier from a method value:
//
//	active.ActionOf(posts.Show) // "web.PostController@Show"
//
// # Framework Adapters
//
// The ginactive, echoactive, rivaasactive and httpactive packages install a
// per-request Checker for their router. Templates reach it through
// [FromContext] or [FuncMap]:
//
//	tmpl.Funcs(active.FuncMap(active.FromContext(r.Context())))
//
//	<li class="{{ activePattern "posts/*" }}"><a href="/posts">Posts</a></li>
package active
