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

package framework

import (
	"iter"
)

// DrawOrder defines the within-bucket draw policy a BucketQueue implementation provides.
// Cross-bucket ordering (strict ascending signed priority) is identical for every implementation; DrawOrder only
// describes which end of a priority bucket Pop draws from.
type DrawOrder string

const (
	// DrawOrderFIFO indicates that, within a single priority bucket, Pop returns items in the order they were pushed
	// (oldest first).
	DrawOrderFIFO DrawOrder = "FIFO"

	// DrawOrderLIFO indicates that, within a single priority bucket, Pop returns the most recently pushed item first.
	DrawOrderLIFO DrawOrder = "LIFO"
)

// QueueInspectionMethods defines BucketQueue's read-only methods.
type QueueInspectionMethods interface {
	// Name returns a string identifier for the concrete queue implementation type (e.g., "PriorityQueue").
	Name() string

	// DrawOrder returns the within-bucket draw policy this queue instance provides.
	DrawOrder() DrawOrder

	// Len returns the current number of pending items across all priority buckets.
	Len() int

	// IsEmpty reports whether no items are pending. It is always equivalent to Len() == 0.
	IsEmpty() bool

	// All returns a lazy, non-destructive traversal of every pending (item, priority) pair. Each call to All (and each
	// range over its result) produces a fresh traversal; iterating never mutates queue state.
	//
	// Buckets are visited in drain order: negative priorities ascending, then priority zero, then positive priorities
	// ascending. Within a bucket, items are visited in arrival order (oldest first) regardless of DrawOrder. For a
	// DrawOrderFIFO queue the traversal therefore matches the sequence Pop would produce exactly; for a DrawOrderLIFO
	// queue the cross-bucket axis matches Pop while the within-bucket axis is the arrival-order inspection view.
	All() iter.Seq2[any, int]
}

// BucketQueue is the contract for a bucketed priority scheduling queue. Items are opaque; ordering is determined
// solely by the signed integer priority supplied at push time. The most negative pending priority drains completely
// before any less-negative priority, priority zero drains after all negatives, and positive priorities drain last,
// smallest first.
//
// Implementations are NOT goroutine-safe. The queue is a single-threaded, synchronous structure: no operation blocks,
// and no internal locking is performed. A caller sharing a queue across goroutines MUST supply external mutual
// exclusion around Push/Pop/Len/IsEmpty as a group, and MUST NOT run All concurrently with a mutating call, since the
// traversal reads live bucket state.
type BucketQueue interface {
	QueueInspectionMethods

	// Push enqueues an item under the given priority, creating the priority's bucket if it does not exist. Any integer
	// priority is accepted; priority 0 is the common default for unprioritized work. Push cannot fail.
	Push(item any, priority int)

	// Pop removes and returns the single highest-priority pending item together with its priority. When a bucket is
	// emptied by a Pop, its priority is forgotten immediately; a later Push at that priority recreates the bucket from
	// scratch.
	// Returns ErrQueueEmpty if no items are pending.
	Pop() (item any, priority int, err error)
}
