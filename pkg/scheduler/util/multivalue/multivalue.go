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

// Package multivalue provides a map that keeps an ordered list of values per key while exposing single-value map
// semantics: reading a key yields the last value appended to it. It exists for the irritating class of inputs (query
// strings, header blocks) that carry a list for every key even though most keys hold a single value.
package multivalue

import (
	"maps"
	"slices"
)

// Dict maps keys to ordered value lists. Single-value accessors operate on the last element of a key's list. A key
// holding an empty list reads as absent. The zero value is not usable; construct with New or FromLists.
// Dict is not goroutine-safe.
type Dict[K comparable, V any] struct {
	m map[K][]V
}

// Item is a (key, last value) pair as returned by Items.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// New creates an empty Dict.
func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{m: make(map[K][]V)}
}

// FromLists creates a Dict from a key-to-list mapping. The lists are copied.
func FromLists[K comparable, V any](src map[K][]V) *Dict[K, V] {
	d := New[K, V]()
	for k, vs := range src {
		d.m[k] = slices.Clone(vs)
	}
	return d
}

// Get returns the last value appended under the key. ok is false if the key is absent or its list is empty.
func (d *Dict[K, V]) Get(key K) (value V, ok bool) {
	vs := d.m[key]
	if len(vs) == 0 {
		var zero V
		return zero, false
	}
	return vs[len(vs)-1], true
}

// GetDefault returns the last value appended under the key, or def if the key reads as absent.
func (d *Dict[K, V]) GetDefault(key K, def V) V {
	if v, ok := d.Get(key); ok {
		return v
	}
	return def
}

// GetList returns a copy of the ordered values under the key, empty if the key is absent.
func (d *Dict[K, V]) GetList(key K) []V {
	return slices.Clone(d.m[key])
}

// Set replaces the key's list with the single given value.
func (d *Dict[K, V]) Set(key K, value V) {
	d.m[key] = []V{value}
}

// SetList replaces the key's list with a copy of the given values.
func (d *Dict[K, V]) SetList(key K, values []V) {
	d.m[key] = slices.Clone(values)
}

// SetDefault stores the default as the key's single value if the key reads as absent, and returns the value that
// ended up readable.
func (d *Dict[K, V]) SetDefault(key K, def V) V {
	if v, ok := d.Get(key); ok {
		return v
	}
	d.Set(key, def)
	return def
}

// SetListDefault stores a copy of the default list if the key has no list at all, and returns a copy of the list
// that ended up stored.
func (d *Dict[K, V]) SetListDefault(key K, def []V) []V {
	if _, ok := d.m[key]; !ok {
		d.m[key] = slices.Clone(def)
	}
	return slices.Clone(d.m[key])
}

// Append adds a value to the end of the key's list, creating the list if absent.
func (d *Dict[K, V]) Append(key K, value V) {
	d.m[key] = append(d.m[key], value)
}

// Update merges another multi-value dict into this one, extending each key's list with the other's values rather
// than replacing it.
func (d *Dict[K, V]) Update(other *Dict[K, V]) {
	for k, vs := range other.m {
		d.m[k] = append(d.m[k], vs...)
	}
}

// UpdateSingle merges a plain single-value map, appending each value to its key's list.
func (d *Dict[K, V]) UpdateSingle(other map[K]V) {
	for k, v := range other {
		d.Append(k, v)
	}
}

// Items returns (key, last value) pairs for every key that reads as present, in unspecified order.
func (d *Dict[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, len(d.m))
	for k := range d.m {
		if v, ok := d.Get(k); ok {
			items = append(items, Item[K, V]{Key: k, Value: v})
		}
	}
	return items
}

// Lists returns a copy of the full key-to-list mapping.
func (d *Dict[K, V]) Lists() map[K][]V {
	out := make(map[K][]V, len(d.m))
	for k, vs := range d.m {
		out[k] = slices.Clone(vs)
	}
	return out
}

// Values returns the last value of every key that reads as present, in unspecified order.
func (d *Dict[K, V]) Values() []V {
	values := make([]V, 0, len(d.m))
	for k := range d.m {
		if v, ok := d.Get(k); ok {
			values = append(values, v)
		}
	}
	return values
}

// Keys returns every key with a stored list (even an empty one), in unspecified order.
func (d *Dict[K, V]) Keys() []K {
	return slices.Collect(maps.Keys(d.m))
}

// Len returns the number of keys with a stored list.
func (d *Dict[K, V]) Len() int {
	return len(d.m)
}

// Copy returns a Dict with independently copied lists.
func (d *Dict[K, V]) Copy() *Dict[K, V] {
	return FromLists(d.m)
}
