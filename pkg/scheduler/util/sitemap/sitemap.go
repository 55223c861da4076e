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

// Package sitemap provides a simple rooted tree that records the resources a crawl has visited, annotates nodes with
// result labels, and renders an indented textual representation of the traversal.
package sitemap

import (
	"strings"
)

const indent = "  "

// node represents a visited resource (a page, image or any other file).
type node struct {
	url      string
	labels   []string
	children []*node
}

// Map records visited resources as a forest of rooted trees. A resource whose parent is unknown at the time it is
// added becomes a root. Map is not goroutine-safe.
type Map struct {
	nodes map[string]*node
	roots []*node
}

// New creates an empty Map.
func New() *Map {
	return &Map{nodes: make(map[string]*node)}
}

// AddNode records a visited URL under its parent. If the parent URL has not been recorded, the node becomes a new
// root. A URL that was already recorded is ignored; the first recorded parent wins.
func (m *Map) AddNode(url, parentURL string) {
	if _, ok := m.nodes[url]; ok {
		return
	}
	n := &node{url: url}
	m.nodes[url] = n
	if parent, ok := m.nodes[parentURL]; ok {
		parent.children = append(parent.children, n)
		return
	}
	m.roots = append(m.roots, n)
}

// Annotate attaches a result label to a recorded URL. Labels accumulate in the order given. Annotating a URL that
// was never recorded is a no-op.
func (m *Map) Annotate(url, label string) {
	if n, ok := m.nodes[url]; ok {
		n.labels = append(n.labels, label)
	}
}

// Len returns the number of recorded resources.
func (m *Map) Len() int {
	return len(m.nodes)
}

// String renders the forest as indented text: a depth-first walk visiting children in insertion order, two spaces of
// indentation per level. Each node's line is followed by one line per annotated label, indented one level deeper and
// marked with a leading "- ", before any of the node's children.
func (m *Map) String() string {
	var b strings.Builder
	for _, root := range m.roots {
		root.render(&b, 0)
	}
	return b.String()
}

func (n *node) render(b *strings.Builder, level int) {
	prefix := strings.Repeat(indent, level)
	b.WriteString(prefix)
	b.WriteString(n.url)
	b.WriteString("\n")
	for _, label := range n.labels {
		b.WriteString(prefix)
		b.WriteString(indent)
		b.WriteString("- ")
		b.WriteString(label)
		b.WriteString("\n")
	}
	for _, child := range n.children {
		child.render(b, level+1)
	}
}
