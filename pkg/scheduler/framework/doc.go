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

// Package framework defines the contracts for the crawl scheduler's queueing disciplines.
//
// It establishes the interface that bucketed priority queue implementations must adhere to. By building on this
// interface, scheduling components can swap draw policies (FIFO vs. LIFO within a priority level) without changing
// any of the code that produces or consumes work.
//
// The primary contracts are:
//   - `BucketQueue`: an interface for single-threaded, in-memory priority bucket queues.
//   - `DrawOrder`: a capability string that makes a queue's within-bucket draw policy explicit, so owning components
//     can assert they were handed the discipline they expect.
//
// Implementations live under `plugins/queue` and register themselves with the factory in that package.
package framework
