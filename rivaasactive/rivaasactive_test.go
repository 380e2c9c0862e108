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

//go:build !integration

package rivaasactive

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/router"

	"rivaas.dev/active"
)

type postController struct{}

func (p *postController) Index(c *router.Context) {
	nav := Get(c)
	//nolint:errcheck // Test handler
	c.String(http.StatusOK, nav.Route("posts.index")+"|"+nav.Pattern("posts")+"|"+nav.Controller("rivaasactive.post"))
}

func (p *postController) Show(c *router.Context) {
	nav := Get(c)
	//nolint:errcheck // Test handler
	c.String(http.StatusOK, nav.Route("posts.show")+"|"+nav.Action("rivaasactive.postController@Show")+"|"+nav.Controller("rivaasactive.post", "Show"))
}

func newRouter(opts ...active.Option) *router.Router {
	posts := &postController{}

	r := router.MustNew()
	r.Use(New(r, opts...))
	r.GET("/posts", posts.Index).SetName("posts.index")
	r.GET("/posts/:id", posts.Show)

	return r
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func TestRivaasActive_NamedRoute(t *testing.T) {
	t.Parallel()

	r := newRouter()

	w := serve(r, http.MethodGet, "/posts")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active|active|active", w.Body.String())
}

func TestRivaasActive_UnnamedRoute(t *testing.T) {
	t.Parallel()

	r := newRouter()

	w := serve(r, http.MethodGet, "/posts/42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "|active|", w.Body.String())
}

func TestRivaasActive_CheckerOptions(t *testing.T) {
	t.Parallel()

	r := newRouter(active.WithClass("is-active"))

	w := serve(r, http.MethodGet, "/posts")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "is-active|is-active|is-active", w.Body.String())
}

func TestRivaasActive_RepeatedRequests(t *testing.T) {
	t.Parallel()

	r := newRouter()

	for range 3 {
		w := serve(r, http.MethodGet, "/posts/7")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "|active|", w.Body.String())
	}
}

func TestNewChecker_IndexMiss(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	index := map[string]routeMeta{
		"GET /posts": {name: "posts.index", action: "rivaasactive.postController@Index"},
	}

	nav := newChecker(index, http.MethodGet, "/posts", "/posts", []active.Option{active.WithLogger(logger)})
	assert.Equal(t, "active", nav.Route("posts.index"))
	assert.NotContains(t, buf.String(), "active route not indexed")

	nav = newChecker(index, http.MethodGet, "/drafts", "/drafts", []active.Option{active.WithLogger(logger)})
	assert.Empty(t, nav.Route("posts.index"))
	assert.Equal(t, "active", nav.Pattern("drafts"))
	assert.Contains(t, buf.String(), "active route not indexed")
	assert.Contains(t, buf.String(), "path=/drafts")
}
