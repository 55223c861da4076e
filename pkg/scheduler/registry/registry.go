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

package registry

import (
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/zetxqx/crawlsched/pkg/scheduler/framework/plugins/queue"
	logutil "github.com/zetxqx/crawlsched/pkg/scheduler/util/logging"
)

// Registry owns one `ManagedQueue` per flow of work, all built from a single registered queue variant. It aggregates
// the pending count across flows so callers can observe total backlog in O(1).
//
// The Registry's own bookkeeping (opening queues, the aggregate counter) is guarded and safe for concurrent use; the
// individual queues it hands out are not, per the `framework.BucketQueue` contract.
type Registry struct {
	variant  queue.RegisteredQueueName
	logger   logr.Logger
	totalLen atomic.Int64

	mu     sync.Mutex
	queues map[string]*ManagedQueue
}

// NewRegistry creates a Registry whose queues are all instances of the named registered variant. The variant is
// validated lazily, on first open.
func NewRegistry(variant queue.RegisteredQueueName, logger logr.Logger) *Registry {
	return &Registry{
		variant: variant,
		logger:  logger.WithName("queue-registry").WithValues("queueType", string(variant)),
		queues:  make(map[string]*ManagedQueue),
	}
}

// OpenQueue returns the managed queue for the given flow, creating it from the registered variant on first use.
// Reopening a flow returns the same instance.
func (r *Registry) OpenQueue(flowID string) (*ManagedQueue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if mq, ok := r.queues[flowID]; ok {
		return mq, nil
	}

	q, err := queue.NewQueueFromName(r.variant)
	if err != nil {
		return nil, err
	}
	mq := newManagedQueue(q, flowID, r.logger, func(lenDelta int64) {
		r.totalLen.Add(lenDelta)
	})
	r.queues[flowID] = mq
	r.logger.V(logutil.DEBUG).Info("Opened work queue", "flowID", flowID)
	return mq, nil
}

// TotalLen returns the number of pending items aggregated across every queue the registry has opened.
func (r *Registry) TotalLen() int {
	return int(r.totalLen.Load())
}

// Flows returns the number of queues the registry currently owns.
func (r *Registry) Flows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queues)
}
