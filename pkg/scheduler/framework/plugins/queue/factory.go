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

// Package queue defines the registration point for `framework.BucketQueue` implementations used by the scheduler.
package queue

import (
	"fmt"
	"sync"

	"github.com/zetxqx/crawlsched/pkg/scheduler/framework"
)

type RegisteredQueueName string

// QueueConstructor defines the function signature for creating a `framework.BucketQueue`. Bucket queues are ordered
// by their signed integer priority alone, so constructors take no configuration.
type QueueConstructor func() framework.BucketQueue

var (
	// mu guards the registration map.
	mu sync.RWMutex
	// RegisteredQueues stores the constructors for all registered queues.
	RegisteredQueues = make(map[RegisteredQueueName]QueueConstructor)
)

// MustRegisterQueue registers a queue constructor, and panics if the name is
// already registered.
// This is intended to be called from init() functions.
func MustRegisterQueue(name RegisteredQueueName, constructor QueueConstructor) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := RegisteredQueues[name]; ok {
		panic(fmt.Sprintf("framework.BucketQueue already registered with name %q", name))
	}
	RegisteredQueues[name] = constructor
}

// NewQueueFromName creates a new BucketQueue given its registered name. This is called by owning components (e.g. the
// scheduler `registry.Registry`) when a queue for a new flow of work is first needed.
func NewQueueFromName(name RegisteredQueueName) (framework.BucketQueue, error) {
	mu.RLock()
	defer mu.RUnlock()
	constructor, ok := RegisteredQueues[name]
	if !ok {
		return nil, fmt.Errorf("no framework.BucketQueue registered with name %q", name)
	}
	return constructor(), nil
}
