/*
   Copyright 2025 The ResolvQ Authors

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

package queue

import (
	"context"
	"errors"
	"sync"
)

// Reason classifies why a send could not be delivered.
type Reason int

const (
	// ReasonFull indicates the queue was at capacity.
	ReasonFull Reason = iota

	// ReasonClosed indicates the receiving side is gone.
	ReasonClosed
)

// String returns the fixed display phrase for the reason.
func (r Reason) String() string {
	if r == ReasonClosed {
		return "queue closed"
	}
	return "queue full"
}

// SendError reports a failed delivery on a bounded queue.
type SendError struct {
	Reason Reason
}

// Error implements the built-in error interface.
func (e *SendError) Error() string { return e.Reason.String() }

// Full reports whether the delivery failed because the queue was at capacity.
func (e *SendError) Full() bool { return e.Reason == ReasonFull }

// Closed reports whether the delivery failed because the queue was closed.
func (e *SendError) Closed() bool { return e.Reason == ReasonClosed }

// ErrClosed is returned by Recv once the queue is closed and drained.
var ErrClosed = errors.New("queue closed")

// Queue is a bounded, in-memory, multi-producer queue. Sends never block;
// receivers block until a value, cancellation, or close.
type Queue[T any] struct {
	mu     sync.Mutex
	ch     chan T
	closed bool
}

// New creates a queue holding at most capacity buffered values.
// A capacity below 1 is raised to 1.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{ch: make(chan T, capacity)}
}

// TrySend enqueues v without blocking. It returns nil on success and a
// SendError describing the failure otherwise.
func (q *Queue[T]) TrySend(v T) *SendError {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return &SendError{Reason: ReasonClosed}
	}
	select {
	case q.ch <- v:
		return nil
	default:
		return &SendError{Reason: ReasonFull}
	}
}

// Recv blocks until a value is available, the context is done, or the queue
// is closed and drained (in which case it returns ErrClosed).
func (q *Queue[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case v, ok := <-q.ch:
		if !ok {
			return zero, ErrClosed
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Len returns the number of buffered values.
func (q *Queue[T]) Len() int { return len(q.ch) }

// Close marks the queue closed. Buffered values remain receivable; further
// sends fail with ReasonClosed. Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}
