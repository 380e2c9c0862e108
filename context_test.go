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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_RoundTrip(t *testing.T) {
	t.Parallel()

	c := New(NewRoute("posts", "posts.index", ""))
	ctx := NewContext(context.Background(), c)

	assert.Same(t, c, FromContext(ctx))
	assert.Equal(t, "active", FromContext(ctx).Route("posts.index"))
}

func TestContext_Missing(t *testing.T) {
	t.Parallel()

	c := FromContext(context.Background())
	require.NotNil(t, c)
	assert.Empty(t, c.Route("posts.index"))
	assert.Empty(t, c.Controller("Post"))

	var nilChecker *Checker
	c = FromContext(NewContext(context.Background(), nilChecker))
	require.NotNil(t, c)
	assert.Empty(t, c.Pattern("posts"))
}
