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

// Package registry provides the stateful owner of the scheduler's bucket queues. It hands out `ManagedQueue`
// instances, stateful wrappers that add statistics tracking and trace logging to a pure `framework.BucketQueue`.
package registry

import (
	"iter"
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/zetxqx/crawlsched/pkg/scheduler/framework"
	logutil "github.com/zetxqx/crawlsched/pkg/scheduler/util/logging"
)

type parentStatsReconciler func(lenDelta int64)

// ManagedQueue wraps a `framework.BucketQueue` and is responsible for maintaining an accurate, atomically-updated
// pending count that is aggregated at the registry level.
//
// # Statistical Integrity
//
// ManagedQueue maintains its own `len` field using atomic operations. This provides O(1) access for the parent
// `Registry`'s aggregated statistics without touching the underlying structure.
//
// This design is predicated on a critical assumption: all mutating operations on the underlying
// `framework.BucketQueue` MUST be performed exclusively through this wrapper. Direct access to the underlying queue
// will cause statistical drift.
//
// Note that the wrapper adds statistics, not synchronization. Bucket queues are single-threaded structures, and a
// ManagedQueue inherits that contract: a caller sharing one across goroutines must serialize access externally.
type ManagedQueue struct {
	queue                  framework.BucketQueue
	len                    atomic.Int64
	reconcileRegistryStats parentStatsReconciler
	logger                 logr.Logger
}

// newManagedQueue creates a new instance of a `ManagedQueue`.
func newManagedQueue(
	queue framework.BucketQueue,
	flowID string,
	logger logr.Logger,
	reconcileRegistryStats parentStatsReconciler,
) *ManagedQueue {
	mqLogger := logger.WithName("managed-queue").WithValues(
		"flowID", flowID,
		"queueType", queue.Name(),
	)
	return &ManagedQueue{
		queue:                  queue,
		reconcileRegistryStats: reconcileRegistryStats,
		logger:                 mqLogger,
	}
}

// Push enqueues an item under the given priority and updates the pending-count statistics.
func (mq *ManagedQueue) Push(item any, priority int) {
	mq.queue.Push(item, priority)
	mq.reconcileStats(1)
	mq.logger.V(logutil.TRACE).Info("Pushed item", "priority", priority, "len", mq.Len())
}

// Pop removes and returns the highest-priority pending item, updating the pending-count statistics on success.
func (mq *ManagedQueue) Pop() (any, int, error) {
	item, priority, err := mq.queue.Pop()
	if err != nil {
		return nil, 0, err
	}
	mq.reconcileStats(-1)
	mq.logger.V(logutil.TRACE).Info("Popped item", "priority", priority, "len", mq.Len())
	return item, priority, nil
}

// reconcileStats atomically updates the queue's own pending count and calls the parent registry's reconciler so the
// aggregated total stays consistent.
func (mq *ManagedQueue) reconcileStats(lenDelta int64) {
	mq.len.Add(lenDelta)
	if mq.reconcileRegistryStats != nil {
		mq.reconcileRegistryStats(lenDelta)
	}
}

// --- Pass-through and accessor methods ---

func (mq *ManagedQueue) Name() string                   { return mq.queue.Name() }
func (mq *ManagedQueue) DrawOrder() framework.DrawOrder { return mq.queue.DrawOrder() }
func (mq *ManagedQueue) Len() int                       { return int(mq.len.Load()) }
func (mq *ManagedQueue) IsEmpty() bool                  { return mq.len.Load() == 0 }
func (mq *ManagedQueue) All() iter.Seq2[any, int]       { return mq.queue.All() }

var _ framework.QueueInspectionMethods = &ManagedQueue{}
