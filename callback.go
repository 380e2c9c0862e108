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
	"reflect"
	"runtime"
	"strings"
)

const controllerSuffix = "Controller"

// ParseCallback splits an action identifier on its last "@".
// Without an "@" the whole action is the controller and ok is false.
//
//	ParseCallback("web.PostController@Show") // "web.PostController", "Show", true
//	ParseCallback("web.listPosts")           // "web.listPosts", "", false
func ParseCallback(action string) (controller, method string, ok bool) {
	i := strings.LastIndexByte(action, '@')
	if i < 0 {
		return action, "", false
	}

	return action[:i], action[i+1:], true
}

func trimController(controller string, mode TrimMode) string {
	if mode == TrimAffixes {
		return strings.TrimSuffix(controller, controllerSuffix)
	}

	return strings.ReplaceAll(controller, controllerSuffix, "")
}

// trimMethod applies verbs in order, so with substring trimming a later verb
// also sees the result of removing an earlier one.
func trimMethod(method string, verbs []string, mode TrimMode) string {
	if mode == TrimAffixes {
		for _, v := range verbs {
			if rest, ok := strings.CutPrefix(method, v); ok {
				return rest
			}
		}
		return method
	}

	for _, v := range verbs {
		method = strings.ReplaceAll(method, v, "")
	}

	return method
}

// ActionOf returns the action identifier for a handler function.
// Method values give "pkg.Type@Method"; plain functions give "pkg.Func";
// closures, nil and non-function values give "".
//
// Example:
//
//	posts := &web.PostController{}
//	active.ActionOf(posts.Show) // "web.PostController@Show"
func ActionOf(handler any) string {
	if handler == nil {
		return ""
	}
	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}

	return ActionFromFuncName(fn.Name())
}

// ActionFromFuncName converts a Go function symbol into an action identifier.
//
// It accepts raw runtime names as well as the cleaned handler names used in
// route introspection:
//
//	"example.com/app/web.(*PostController).Show-fm"              -> "web.PostController@Show"
//	"example.com/app/web.PostController.Index-fm() (posts.go:12)" -> "web.PostController@Index"
//	"example.com/app/web.listPosts"                              -> "web.listPosts"
//	"gopkg.in/yaml%2ev3.(*Decoder).Decode-fm"                    -> "yaml.v3.Decoder@Decode"
//	"example.com/app/web.routes.func1"                           -> ""
func ActionFromFuncName(name string) string {
	name = strings.TrimSpace(name)

	// Strip a " (file.go:12)" location suffix.
	if i := strings.LastIndex(name, " ("); i > 0 && strings.HasSuffix(name, ")") {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, "()")
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || strings.Contains(name, "(λ)") {
		return ""
	}

	// Keep the package name, drop the import path.
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, "[...]", "")

	// Dots in the last import path element are escaped as %2e, so the
	// package name is still the first dot-separated part.
	parts := strings.Split(name, ".")
	parts[0] = strings.ReplaceAll(parts[0], "%2e", ".")
	for _, part := range parts[1:] {
		if isAnonymousPart(part) {
			return ""
		}
	}

	switch len(parts) {
	case 2:
		return parts[0] + "." + parts[1]
	case 3:
		typ := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(parts[1], "(*"), "("), ")")
		return parts[0] + "." + typ + "@" + parts[2]
	default:
		return ""
	}
}

// isAnonymousPart reports whether a symbol segment belongs to a closure:
// "func1", "2" or "gowrap1".
func isAnonymousPart(part string) bool {
	for _, prefix := range []string{"func", "gowrap"} {
		if rest, ok := strings.CutPrefix(part, prefix); ok && rest != "" && isDigits(rest) {
			return true
		}
	}

	return part != "" && isDigits(part)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
