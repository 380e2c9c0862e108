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

// Package rivaasactive installs a per-request active.Checker for rivaas.dev/router.
//
// The route URI comes from the request path, the route name from named
// routes (Route.SetName) and the action identifier from the handler name the
// router records for introspection.
//
// # Basic Usage
//
//	import "rivaas.dev/active/rivaasactive"
//
//	r := router.MustNew()
//	r.Use(rivaasactive.New(r))
//	r.GET("/posts", posts.Index).SetName("posts.index")
//	r.GET("/posts/:id", posts.Show).SetName("posts.show")
//
//	func (p *PostController) Show(c *router.Context) {
//	    nav := rivaasactive.Get(c)
//	    if nav.IsRoute("posts.show") {
//	        // ...
//	    }
//	}
//
// The route index is built on the first request, which freezes the router.
// Register and name every route before serving.
package rivaasactive
