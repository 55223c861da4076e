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

// Package caseless provides a string-keyed map that normalizes keys by lowercasing before every store and lookup,
// so "Content-Type", "content-type" and "CONTENT-TYPE" address the same slot. Value storage and comparison are
// unaffected by the normalization.
package caseless

import (
	"strings"
)

// Normalizer transforms a value before it is stored. The Dict applies it to every value it accepts, including
// defaults handed to Get and SetDefault, mirroring how keys are normalized on every access.
type Normalizer[V any] func(V) V

// Dict is a case-insensitive string-keyed map. The zero value is not usable; construct with New or FromKeys.
// Dict is not goroutine-safe.
type Dict[V any] struct {
	m         map[string]V
	normValue Normalizer[V]
}

// Option configures a Dict at construction time.
type Option[V any] func(*Dict[V])

// WithValueNormalizer installs a value normalizer applied to every stored value and default.
func WithValueNormalizer[V any](fn Normalizer[V]) Option[V] {
	return func(d *Dict[V]) {
		d.normValue = fn
	}
}

// New creates an empty Dict.
func New[V any](opts ...Option[V]) *Dict[V] {
	d := &Dict[V]{m: make(map[string]V)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromKeys creates a Dict with every key in keys set to value. Keys that normalize to the same string collapse to
// one entry.
func FromKeys[V any](keys []string, value V, opts ...Option[V]) *Dict[V] {
	d := New(opts...)
	for _, k := range keys {
		d.Set(k, value)
	}
	return d
}

func normKey(key string) string {
	return strings.ToLower(key)
}

func (d *Dict[V]) normalize(value V) V {
	if d.normValue == nil {
		return value
	}
	return d.normValue(value)
}

// Get returns the value stored under the key, or the (normalized) default if the key is absent.
func (d *Dict[V]) Get(key string, def V) V {
	if v, ok := d.m[normKey(key)]; ok {
		return v
	}
	return d.normalize(def)
}

// Lookup returns the value stored under the key and whether the key is present.
func (d *Dict[V]) Lookup(key string) (V, bool) {
	v, ok := d.m[normKey(key)]
	return v, ok
}

// Set stores the (normalized) value under the (normalized) key, replacing any existing value.
func (d *Dict[V]) Set(key string, value V) {
	d.m[normKey(key)] = d.normalize(value)
}

// Has reports whether the key is present.
func (d *Dict[V]) Has(key string) bool {
	_, ok := d.m[normKey(key)]
	return ok
}

// Delete removes the key, reporting whether it was present.
func (d *Dict[V]) Delete(key string) bool {
	k := normKey(key)
	_, ok := d.m[k]
	delete(d.m, k)
	return ok
}

// Pop removes the key and returns its value, reporting whether it was present.
func (d *Dict[V]) Pop(key string) (V, bool) {
	k := normKey(key)
	v, ok := d.m[k]
	delete(d.m, k)
	return v, ok
}

// SetDefault stores the (normalized) default under the key if the key is absent, and returns the value that ended up
// stored.
func (d *Dict[V]) SetDefault(key string, def V) V {
	k := normKey(key)
	if v, ok := d.m[k]; ok {
		return v
	}
	v := d.normalize(def)
	d.m[k] = v
	return v
}

// Update stores every entry of other into the Dict, normalizing keys and values as usual. Later entries win when
// several of other's keys normalize to the same string; within a single call that order is the map's iteration
// order, so such collisions should be avoided by the caller.
func (d *Dict[V]) Update(other map[string]V) {
	for k, v := range other {
		d.Set(k, v)
	}
}

// Keys returns the normalized keys in unspecified order.
func (d *Dict[V]) Keys() []string {
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (d *Dict[V]) Len() int {
	return len(d.m)
}
