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
	"errors"
)

// `BucketQueue` Errors
//
// These errors relate to operations directly on a `BucketQueue` implementation. They are the only failure modes in
// the queueing core: Push always succeeds for any priority value, and the inspection methods cannot fail on a
// structurally valid queue.
var (
	// ErrQueueEmpty indicates that `BucketQueue.Pop()` was called with no items pending in any bucket. It is a
	// recoverable condition; callers are expected to check `IsEmpty()`/`Len()` first or handle the failure explicitly.
	ErrQueueEmpty = errors.New("pop from an empty queue")
)
