/*
Copyright 2025 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package caseless

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysAreNormalizedOnEveryAccess(t *testing.T) {
	t.Parallel()
	d := New[string]()

	d.Set("Content-Type", "text/html")
	assert.Equal(t, "text/html", d.Get("content-type", ""), "lookup must be case-insensitive")
	assert.Equal(t, "text/html", d.Get("CONTENT-TYPE", ""))
	assert.True(t, d.Has("cOnTeNt-TyPe"))

	d.Set("CONTENT-TYPE", "application/json")
	assert.Equal(t, 1, d.Len(), "keys differing only in case must share one slot")
	assert.Equal(t, "application/json", d.Get("Content-Type", ""))

	assert.True(t, d.Delete("Content-type"))
	assert.False(t, d.Has("content-type"))
	assert.False(t, d.Delete("content-type"), "deleting an absent key must report false")
}

func TestGetDefaultAndLookup(t *testing.T) {
	t.Parallel()
	d := New[int]()

	assert.Equal(t, 42, d.Get("missing", 42), "Get must return the default for an absent key")
	_, ok := d.Lookup("missing")
	assert.False(t, ok)

	d.Set("Retry-After", 7)
	v, ok := d.Lookup("retry-after")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestPopAndSetDefault(t *testing.T) {
	t.Parallel()
	d := New[string]()
	d.Set("Host", "example.org")

	v, ok := d.Pop("HOST")
	assert.True(t, ok)
	assert.Equal(t, "example.org", v)
	assert.Zero(t, d.Len())

	assert.Equal(t, "fallback", d.SetDefault("Host", "fallback"), "SetDefault must store the default when absent")
	assert.Equal(t, "fallback", d.SetDefault("host", "other"), "SetDefault must keep the existing value")
}

func TestValueNormalizer(t *testing.T) {
	t.Parallel()
	d := New(WithValueNormalizer(strings.TrimSpace))

	d.Set("Accept", "  text/plain ")
	assert.Equal(t, "text/plain", d.Get("accept", ""), "stored values must pass through the normalizer")
	assert.Equal(t, "gzip", d.Get("Accept-Encoding", " gzip "), "defaults must pass through the normalizer too")
}

func TestUpdateAndFromKeys(t *testing.T) {
	t.Parallel()
	d := FromKeys([]string{"A", "b"}, 0)
	assert.Equal(t, 2, d.Len())

	d.Update(map[string]int{"A": 1, "C": 3})
	assert.Equal(t, 1, d.Get("a", -1))
	assert.Equal(t, 3, d.Get("c", -1))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, d.Keys(), "keys are stored normalized")
}
