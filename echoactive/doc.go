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

// Package echoactive installs a per-request active.Checker for echo.
//
// Route names and actions come from e.Routes(). Echo names every route after
// its handler symbol unless the application sets Route.Name, so:
//
//   - an unnamed route gets its action from the handler symbol
//   - a named route gets its name, and its action from [WithActions] if given
//
// # Basic Usage
//
//	import "rivaas.dev/active/echoactive"
//
//	e := echo.New()
//	e.Use(echoactive.New())
//	e.GET("/posts", posts.Index).Name = "posts.index"
//	e.GET("/posts/:id", posts.Show)
//
//	func (p *PostController) Show(c echo.Context) error {
//	    nav := echoactive.Get(c)
//	    return c.Render(http.StatusOK, "post.html", map[string]any{"Nav": nav})
//	}
//
// The route index is built on the first request, so register every route
// before serving.
package echoactive
