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
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const navTemplate = `<li class="{{ activePattern "posts/*" }}">posts</li>` +
	`<li class="{{ activeRoute "home" }}">home</li>` +
	`<li class="{{ activeAction "PostController@getShow" }}">action</li>` +
	`<li class="{{ activeController "Post" "Show" }}">new</li>` +
	`<li class="{{ activeControllers "Post" "Page" }}">content</li>` +
	`<li class="{{ (activeClass "current").Pattern "posts/*" }}">custom</li>`

func TestFuncMap(t *testing.T) {
	t.Parallel()

	base, err := template.New("nav").Funcs(FuncMap(nil)).Parse(navTemplate)
	require.NoError(t, err)

	tmpl, err := base.Clone()
	require.NoError(t, err)
	tmpl.Funcs(FuncMap(New(NewRoute("posts/7", "posts.show", "PostController@getShow"))))

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, nil))

	assert.Equal(t,
		`<li class="active">posts</li>`+
			`<li class="">home</li>`+
			`<li class="active">action</li>`+
			`<li class="">new</li>`+
			`<li class="active">content</li>`+
			`<li class="current">custom</li>`,
		buf.String())
}

func TestFuncMap_Nil(t *testing.T) {
	t.Parallel()

	tmpl, err := template.New("nav").Funcs(FuncMap(nil)).Parse(navTemplate)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, nil))
	assert.NotContains(t, buf.String(), "active")
	assert.NotContains(t, buf.String(), "current")
}
