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

// Package httpactive installs a per-request active.Checker for net/http.
//
// [Mux] wraps http.ServeMux. It records the action identifier of every
// handler it registers and lets routes be named, then stores a Checker in the
// request context before dispatching.
//
// # Basic Usage
//
//	import "rivaas.dev/active/httpactive"
//
//	mux := httpactive.NewMux()
//	mux.HandleFunc("GET /posts", posts.Index).Name("posts.index")
//	mux.HandleFunc("GET /posts/{id}", posts.Show).Name("posts.show")
//
//	http.ListenAndServe(":8080", mux)
//
//	func (p *PostController) Show(w http.ResponseWriter, r *http.Request) {
//	    nav := active.FromContext(r.Context())
//	    // ...
//	}
package httpactive
