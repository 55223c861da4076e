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

package queue_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zetxqx/crawlsched/pkg/scheduler/framework"
	"github.com/zetxqx/crawlsched/pkg/scheduler/framework/plugins/queue"
	"github.com/zetxqx/crawlsched/pkg/scheduler/framework/plugins/queue/bucketqueue"
)

// entry is a (item, priority) pair as produced by Pop and All.
type entry struct {
	Item     any
	Priority int
}

// drain pops until the queue reports empty and returns the full drain order.
func drain(t *testing.T, q framework.BucketQueue) []entry {
	t.Helper()
	var out []entry
	for !q.IsEmpty() {
		item, priority, err := q.Pop()
		require.NoError(t, err, "Pop on a non-empty queue should not fail")
		out = append(out, entry{Item: item, Priority: priority})
	}
	_, _, err := q.Pop()
	require.ErrorIs(t, err, framework.ErrQueueEmpty, "Pop after a full drain should return ErrQueueEmpty")
	return out
}

// snapshot collects one full traversal of All without mutating the queue.
func snapshot(q framework.BucketQueue) []entry {
	var out []entry
	for item, priority := range q.All() {
		out = append(out, entry{Item: item, Priority: priority})
	}
	return out
}

// mixedFixture pushes the end-to-end example sequence: (A,0), (B,-1), (C,1), (D,-1).
func mixedFixture(q framework.BucketQueue) {
	q.Push("A", 0)
	q.Push("B", -1)
	q.Push("C", 1)
	q.Push("D", -1)
}

// TestQueueConformance is the conformance suite for `framework.BucketQueue` implementations. It iterates over all
// variants registered via `queue.MustRegisterQueue` and runs the subtests every variant must pass regardless of its
// draw order.
func TestQueueConformance(t *testing.T) {
	t.Parallel()

	for queueName, constructor := range queue.RegisteredQueues {
		t.Run(string(queueName), func(t *testing.T) {
			t.Parallel()

			t.Run("Initialization", func(t *testing.T) {
				t.Parallel()
				q := constructor()
				require.NotNil(t, q, "Constructor should return a non-nil queue instance")
				assert.Equal(t, string(queueName), q.Name(), "Name() should match the registered name")
				assert.Contains(t, []framework.DrawOrder{framework.DrawOrderFIFO, framework.DrawOrderLIFO},
					q.DrawOrder(), "DrawOrder() must be one of the defined draw policies")
				assert.Zero(t, q.Len(), "A new queue should have a length of 0")
				assert.True(t, q.IsEmpty(), "A new queue should be empty")
				assert.Empty(t, snapshot(q), "A new queue should have an empty traversal")
			})

			t.Run("PopOnEmpty", func(t *testing.T) {
				t.Parallel()
				q := constructor()
				item, priority, err := q.Pop()
				require.ErrorIs(t, err, framework.ErrQueueEmpty, "Pop on a fresh queue must fail with ErrQueueEmpty")
				assert.Nil(t, item, "Pop on an empty queue should return a nil item")
				assert.Zero(t, priority, "Pop on an empty queue should return the zero priority")
			})

			t.Run("LengthAndEmptinessAccounting", func(t *testing.T) {
				t.Parallel()
				q := constructor()
				priorities := []int{0, -3, 5, 0, -3, 2, 0}
				for i, p := range priorities {
					q.Push(fmt.Sprintf("item-%d", i), p)
					assert.Equal(t, i+1, q.Len(), "Len() must equal the number of pushes so far")
					assert.False(t, q.IsEmpty(), "IsEmpty() must be false while items are pending")
				}
				for remaining := len(priorities); remaining > 0; remaining-- {
					_, _, err := q.Pop()
					require.NoError(t, err, "Pop should not fail while items remain")
					assert.Equal(t, remaining-1, q.Len(), "every Pop must decrease Len() by exactly 1")
					assert.Equal(t, remaining-1 == 0, q.IsEmpty(), "IsEmpty() must be true iff Len() == 0")
				}
			})

			t.Run("DrainOrderIsNonDecreasing", func(t *testing.T) {
				t.Parallel()
				q := constructor()
				priorities := []int{3, -2, 0, 7, -2, 0, 5, -9, 1, 0, math.MaxInt, math.MinInt}
				for i, p := range priorities {
					q.Push(i, p)
				}

				drained := drain(t, q)
				require.Len(t, drained, len(priorities), "a full drain must return every pushed item")

				got := make([]int, len(drained))
				for i, e := range drained {
					got[i] = e.Priority
				}
				assert.True(t, slices.IsSorted(got),
					"Pop priorities must be non-decreasing (full drain-before-advance), got %v", got)

				want := slices.Clone(priorities)
				slices.Sort(want)
				assert.Equal(t, want, got, "the drained priorities must be exactly the pushed priorities, ascending")
			})

			t.Run("BucketRemovalAndRecreation", func(t *testing.T) {
				t.Parallel()
				q := constructor()
				q.Push("A", -1)
				item, priority, err := q.Pop()
				require.NoError(t, err)
				assert.Equal(t, "A", item)
				assert.Equal(t, -1, priority)
				require.True(t, q.IsEmpty(), "emptying the only bucket must leave the queue empty")

				// A later push at the same priority must re-create the bucket with no residual state.
				q.Push("B", -1)
				item, priority, err = q.Pop()
				require.NoError(t, err)
				assert.Equal(t, "B", item, "the re-created bucket must contain only the new item")
				assert.Equal(t, -1, priority)
			})

			t.Run("IterationIsNonDestructiveAndRestartable", func(t *testing.T) {
				t.Parallel()
				q := constructor()
				mixedFixture(q)

				first := snapshot(q)
				assert.Equal(t, 4, q.Len(), "a full traversal must not consume the queue")

				second := snapshot(q)
				assert.Empty(t, cmp.Diff(first, second), "repeated traversals must yield identical sequences")

				// Breaking out of a traversal early must also leave the queue untouched.
				for range q.All() {
					break
				}
				assert.Equal(t, 4, q.Len(), "an abandoned traversal must not consume the queue")
				assert.Empty(t, cmp.Diff(first, snapshot(q)), "a traversal after an abandoned one must be unaffected")
			})

			t.Run("IterationCrossBucketOrderMatchesDrain", func(t *testing.T) {
				t.Parallel()
				q := constructor()
				mixedFixture(q)

				var got []int
				for _, priority := range q.All() {
					got = append(got, priority)
				}
				assert.Equal(t, []int{-1, -1, 0, 1}, got,
					"traversal must visit buckets in drain order: negatives ascending, zero, positives ascending")
			})
		})
	}
}

// TestNewQueueFromName covers the factory lookup path for both registered variants and the unknown-name failure.
func TestNewQueueFromName(t *testing.T) {
	t.Parallel()

	q, err := queue.NewQueueFromName(queue.RegisteredQueueName(bucketqueue.PriorityQueueName))
	require.NoError(t, err, "the FIFO variant must be registered")
	assert.Equal(t, framework.DrawOrderFIFO, q.DrawOrder())

	q, err = queue.NewQueueFromName(queue.RegisteredQueueName(bucketqueue.PriorityStackName))
	require.NoError(t, err, "the LIFO variant must be registered")
	assert.Equal(t, framework.DrawOrderLIFO, q.DrawOrder())

	_, err = queue.NewQueueFromName("NoSuchQueue")
	require.Error(t, err, "an unregistered name must be rejected")
}

// TestPriorityQueueOrdering pins the FIFO variant's contract: push order is draw order within a priority level, and
// traversal order is exactly the drain order.
func TestPriorityQueueOrdering(t *testing.T) {
	t.Parallel()

	t.Run("ZeroPriorityIsFIFO", func(t *testing.T) {
		t.Parallel()
		q := bucketqueue.NewPriorityQueue()
		q.Push("A", 0)
		q.Push("B", 0)
		q.Push("C", 0)
		want := []entry{{"A", 0}, {"B", 0}, {"C", 0}}
		assert.Empty(t, cmp.Diff(want, drain(t, q)), "items sharing a priority must emerge in push order")
	})

	t.Run("MixedPriorities", func(t *testing.T) {
		t.Parallel()
		q := bucketqueue.NewPriorityQueue()
		mixedFixture(q)
		want := []entry{{"B", -1}, {"D", -1}, {"A", 0}, {"C", 1}}
		assert.Empty(t, cmp.Diff(want, drain(t, q)), "FIFO drain must be (B,-1), (D,-1), (A,0), (C,1)")
	})

	t.Run("TraversalEqualsDrain", func(t *testing.T) {
		t.Parallel()
		q := bucketqueue.NewPriorityQueue()
		mixedFixture(q)
		q.Push("E", -7)
		q.Push("F", 1)

		viewed := snapshot(q)
		assert.Empty(t, cmp.Diff(viewed, drain(t, q)),
			"for the FIFO variant, All must be a read-only simulation of the full drain order")
	})
}

// TestPriorityStackOrdering pins the LIFO variant's contract: the most recently pushed item of a level draws first,
// while traversal still replays each bucket in arrival order. The traversal asymmetry is intentional (a stable
// inspection view rather than a consumption view) and is asserted explicitly rather than derived from pop order.
func TestPriorityStackOrdering(t *testing.T) {
	t.Parallel()

	t.Run("ZeroPriorityIsLIFO", func(t *testing.T) {
		t.Parallel()
		q := bucketqueue.NewPriorityStack()
		q.Push("A", 0)
		q.Push("B", 0)
		q.Push("C", 0)
		want := []entry{{"C", 0}, {"B", 0}, {"A", 0}}
		assert.Empty(t, cmp.Diff(want, drain(t, q)), "items sharing a priority must emerge newest-first")
	})

	t.Run("MixedPriorities", func(t *testing.T) {
		t.Parallel()
		q := bucketqueue.NewPriorityStack()
		mixedFixture(q)
		want := []entry{{"D", -1}, {"B", -1}, {"A", 0}, {"C", 1}}
		assert.Empty(t, cmp.Diff(want, drain(t, q)), "LIFO drain must be (D,-1), (B,-1), (A,0), (C,1)")
	})

	t.Run("TraversalIsArrivalOrderWithinBucket", func(t *testing.T) {
		t.Parallel()
		q := bucketqueue.NewPriorityStack()
		mixedFixture(q)

		viewed := snapshot(q)
		wantView := []entry{{"B", -1}, {"D", -1}, {"A", 0}, {"C", 1}}
		assert.Empty(t, cmp.Diff(wantView, viewed),
			"LIFO traversal must replay each bucket oldest-first even though pops draw newest-first")

		wantDrain := []entry{{"D", -1}, {"B", -1}, {"A", 0}, {"C", 1}}
		assert.Empty(t, cmp.Diff(wantDrain, drain(t, q)),
			"the same queue must still drain newest-first within each bucket")
	})
}
