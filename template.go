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

import "html/template"

// FuncMap returns template functions bound to c.
//
//	activePattern     -> c.Pattern
//	activeRoute       -> c.Route
//	activeAction      -> c.Action
//	activeController  -> c.Controller
//	activeControllers -> c.Controllers
//	activeClass       -> c.WithClass
//
// Pass nil at parse time and rebind per request:
//
//	base := template.Must(template.New("nav").Funcs(active.FuncMap(nil)).Parse(nav))
//
//	func render(w http.ResponseWriter, r *http.Request) {
//	    t := template.Must(base.Clone())
//	    t.Funcs(active.FuncMap(active.FromContext(r.Context())))
//	    t.Execute(w, nil)
//	}
//
// In templates:
//
//	<li class="{{ activePattern "posts/*" }}">Posts</li>
//	<li class="{{ activeController "Post" "create" }}">Posts</li>
//	<li class="{{ (activeClass "current").Route "home" }}">Home</li>
func FuncMap(c *Checker) template.FuncMap {
	if c == nil {
		c = New(nil)
	}

	return template.FuncMap{
		"activePattern":     c.Pattern,
		"activeRoute":       c.Route,
		"activeAction":      c.Action,
		"activeController":  c.Controller,
		"activeControllers": c.Controllers,
		"activeClass":       c.WithClass,
	}
}
