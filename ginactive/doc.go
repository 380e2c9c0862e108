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

// Package ginactive installs a per-request active.Checker for gin.
//
// The middleware reads the matched route from gin: the request path becomes
// the route URI, c.HandlerName() becomes the action identifier, and route
// names come from [WithNames] because gin has no named routes.
//
// # Basic Usage
//
//	import "rivaas.dev/active/ginactive"
//
//	r := gin.New()
//	r.Use(ginactive.New(
//	    ginactive.WithNames(map[string]string{
//	        "GET /posts":     "posts.index",
//	        "GET /posts/:id": "posts.show",
//	    }),
//	))
//	r.GET("/posts/:id", posts.Show)
//
// # Accessing the Checker
//
//	func (p *PostController) Show(c *gin.Context) {
//	    nav := ginactive.Get(c)
//	    c.HTML(http.StatusOK, "post.html", gin.H{"Nav": nav})
//	}
//
// The Checker is also stored in the request context, so code that only sees
// *http.Request can use active.FromContext.
package ginactive
