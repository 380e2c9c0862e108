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

package active_test

import (
	"fmt"
	"html/template"
	"os"

	"rivaas.dev/active"
)

// ExampleChecker demonstrates the matching kinds against one route.
func ExampleChecker() {
	route := active.NewRoute("posts/42", "posts.show", "web.PostController@getShow")
	c := active.New(route)

	fmt.Printf("%q\n", c.Pattern("posts/*"))
	fmt.Printf("%q\n", c.Route("posts.index"))
	fmt.Printf("%q\n", c.Action("web.PostController@getShow"))
	fmt.Printf("%q\n", c.Controller("web.Post"))
	fmt.Printf("%q\n", c.Controllers("web.Page", "web.Post"))
	fmt.Printf("%q\n", c.WithClass("current").Route("posts.show"))
	// Output:
	// "active"
	// ""
	// "active"
	// "active"
	// "active"
	// "current"
}

// ExampleChecker_Controller shows excluded methods keeping a link inactive.
func ExampleChecker_Controller() {
	c := active.New(active.NewRoute("posts", "", "PostController@store"))

	fmt.Printf("posts: %q\n", c.Controller("Post"))
	fmt.Printf("new post: %q\n", c.Controller("Post", "store"))
	// Output:
	// posts: "active"
	// new post: ""
}

// ExampleChecker_MethodName shows that verbs are removed as substrings.
func ExampleChecker_MethodName() {
	for _, action := range []string{"PostController@getIndex", "PostController@showgetIndex", "PostController@getShow"} {
		method, _ := active.New(active.NewRoute("", "", action)).MethodName()
		fmt.Println(method)
	}
	// Output:
	// Index
	// Index
	// Show
}

// ExampleMatchPattern demonstrates glob matching on route URIs.
func ExampleMatchPattern() {
	fmt.Println(active.MatchPattern("users/*", "users/42"))
	fmt.Println(active.MatchPattern("users/*", "users/42/edit"))
	fmt.Println(active.MatchPattern("users/*", "users"))
	// Output:
	// true
	// true
	// false
}

// ExampleFuncMap renders a navigation list with template functions.
func ExampleFuncMap() {
	c := active.New(active.NewRoute("posts/42", "posts.show", ""))
	tmpl := template.Must(template.New("nav").Funcs(active.FuncMap(c)).Parse(
		`<a class="{{ activeRoute "home" }}">Home</a> <a class="{{ activePattern "posts/*" }}">Posts</a>`,
	))

	//nolint:errcheck // Example output
	tmpl.Execute(os.Stdout, nil)
	// Output:
	// <a class="">Home</a> <a class="active">Posts</a>
}
