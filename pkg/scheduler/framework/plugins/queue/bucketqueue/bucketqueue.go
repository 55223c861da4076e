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

// Package bucketqueue provides the bucketed priority queue implementations behind `framework.BucketQueue`, using a
// standard library `container/list.List` as the underlying sequence for each priority bucket.
//
// Items are partitioned into three zones by priority sign: a map of negative-priority buckets, a single fast-path
// bucket for the overwhelmingly common priority 0, and a map of positive-priority buckets. Pop drains the negative
// zone (most negative first), then the zero bucket, then the positive zone (smallest first). Selecting the next
// bucket is a linear scan over the distinct priorities currently in use, so the cost of a Pop is proportional to the
// number of active priority levels, not to the number of queued items.
//
// Two variants share all state and read operations and differ only in which end of a bucket Pop draws from:
// "PriorityQueue" (FIFO per level) and "PriorityStack" (LIFO per level). Both store arrival order front-to-back, so
// traversal via All is always oldest-first within a bucket.
package bucketqueue

import (
	"container/list"
	"iter"
	"maps"
	"slices"

	"github.com/zetxqx/crawlsched/pkg/scheduler/framework"
	"github.com/zetxqx/crawlsched/pkg/scheduler/framework/plugins/queue"
)

const (
	// PriorityQueueName is the registered name of the FIFO-per-level variant.
	PriorityQueueName = "PriorityQueue"

	// PriorityStackName is the registered name of the LIFO-per-level variant.
	PriorityStackName = "PriorityStack"
)

func init() {
	queue.MustRegisterQueue(queue.RegisteredQueueName(PriorityQueueName), func() framework.BucketQueue {
		return NewPriorityQueue()
	})
	queue.MustRegisterQueue(queue.RegisteredQueueName(PriorityStackName), func() framework.BucketQueue {
		return NewPriorityStack()
	})
}

// bucketQueue implements `framework.BucketQueue`. Both variants are instances of this one structure; only the draw
// order consulted by Pop differs.
//
// Invariants:
//   - A priority present as a key in neg or pos always maps to a non-empty list. A bucket emptied by Pop is deleted
//     before Pop returns.
//   - size equals the total number of items across all buckets at all times.
//
// This implementation is NOT concurrent-safe, per the `framework.BucketQueue` contract.
type bucketQueue struct {
	name string
	draw framework.DrawOrder

	neg  map[int]*list.List
	zero *list.List
	pos  map[int]*list.List
	size int
}

var _ framework.BucketQueue = &bucketQueue{}

// NewPriorityQueue creates the FIFO-per-level variant: items that share a priority emerge in push order.
func NewPriorityQueue() framework.BucketQueue {
	return newBucketQueue(PriorityQueueName, framework.DrawOrderFIFO)
}

// NewPriorityStack creates the LIFO-per-level variant: the most recently pushed item of a priority emerges first.
func NewPriorityStack() framework.BucketQueue {
	return newBucketQueue(PriorityStackName, framework.DrawOrderLIFO)
}

func newBucketQueue(name string, draw framework.DrawOrder) *bucketQueue {
	return &bucketQueue{
		name: name,
		draw: draw,
		neg:  make(map[int]*list.List),
		zero: list.New(),
		pos:  make(map[int]*list.List),
	}
}

// --- `framework.BucketQueue` Interface Implementation ---

// Name returns the variant's registered name.
func (q *bucketQueue) Name() string {
	return q.name
}

// DrawOrder returns the within-bucket draw policy of this variant.
func (q *bucketQueue) DrawOrder() framework.DrawOrder {
	return q.draw
}

// Len returns the number of pending items across all buckets.
func (q *bucketQueue) Len() int {
	return q.size
}

// IsEmpty reports whether no items are pending.
func (q *bucketQueue) IsEmpty() bool {
	return q.size == 0
}

// Push enqueues an item at the back of the bucket for the given priority, creating the bucket on first use.
// Arrival order always runs front-to-back; the variant only decides which end Pop draws from.
func (q *bucketQueue) Push(item any, priority int) {
	q.bucketFor(priority).PushBack(item)
	q.size++
}

// Pop removes and returns the highest-priority pending item and its priority. The next bucket is the one with the
// minimum key in the first non-empty zone, scanning negatives before the zero bucket before positives.
func (q *bucketQueue) Pop() (any, int, error) {
	switch {
	case len(q.neg) > 0:
		priority := minKey(q.neg)
		return q.takeFromZone(q.neg, priority), priority, nil
	case q.zero.Len() > 0:
		return q.draw1(q.zero), 0, nil
	case len(q.pos) > 0:
		priority := minKey(q.pos)
		return q.takeFromZone(q.pos, priority), priority, nil
	}
	return nil, 0, framework.ErrQueueEmpty
}

// All returns a restartable traversal of all pending (item, priority) pairs: negative buckets ascending, the zero
// bucket, then positive buckets ascending, each bucket oldest-first. The traversal reads live state and performs no
// mutation.
func (q *bucketQueue) All() iter.Seq2[any, int] {
	return func(yield func(any, int) bool) {
		for _, priority := range sortedKeys(q.neg) {
			if !yieldBucket(q.neg[priority], priority, yield) {
				return
			}
		}
		if !yieldBucket(q.zero, 0, yield) {
			return
		}
		for _, priority := range sortedKeys(q.pos) {
			if !yieldBucket(q.pos[priority], priority, yield) {
				return
			}
		}
	}
}

// --- internals ---

// bucketFor returns the bucket for a priority, creating it in the owning zone if absent.
func (q *bucketQueue) bucketFor(priority int) *list.List {
	var zone map[int]*list.List
	switch {
	case priority == 0:
		return q.zero
	case priority < 0:
		zone = q.neg
	default:
		zone = q.pos
	}
	bucket := zone[priority]
	if bucket == nil {
		bucket = list.New()
		zone[priority] = bucket
	}
	return bucket
}

// takeFromZone draws one item from the zone's bucket at the given priority and deletes the bucket if that emptied it,
// so no stale empty buckets persist as keys.
func (q *bucketQueue) takeFromZone(zone map[int]*list.List, priority int) any {
	bucket := zone[priority]
	item := q.draw1(bucket)
	if bucket.Len() == 0 {
		delete(zone, priority)
	}
	return item
}

// draw1 removes one item from the end of the bucket selected by the variant's draw order.
func (q *bucketQueue) draw1(bucket *list.List) any {
	element := bucket.Front()
	if q.draw == framework.DrawOrderLIFO {
		element = bucket.Back()
	}
	q.size--
	return bucket.Remove(element)
}

// minKey returns the smallest priority with a pending bucket in the zone. The caller must ensure the zone is
// non-empty.
func minKey(zone map[int]*list.List) int {
	first := true
	var minPriority int
	for priority := range zone {
		if first || priority < minPriority {
			minPriority = priority
			first = false
		}
	}
	return minPriority
}

func sortedKeys(zone map[int]*list.List) []int {
	return slices.Sorted(maps.Keys(zone))
}

func yieldBucket(bucket *list.List, priority int, yield func(any, int) bool) bool {
	for element := bucket.Front(); element != nil; element = element.Next() {
		if !yield(element.Value, priority) {
			return false
		}
	}
	return true
}
