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

// Package clienterr defines the unified error representation returned by
// every fallible operation of the ResolvQ client.
package clienterr

import (
	"resolvq.dev/clienterr/internal/trace"
)

// Error is the canonical error type of the client.
//
// It pairs a classified Kind with an optional backtrace captured at
// construction time. Whatever subsystem failed — security layer, byte
// stream, wire protocol, internal queue — its error is converted into an
// Error at the boundary where it is first observed, so callers only ever
// match on one type. Deadline failures reported by any of those subsystems
// are normalized to the Timeout kind during that conversion.
//
// An Error is immutable once constructed and safe to move between
// goroutines. Backtrace capture is off by default; see the internal trace
// configuration (RESOLVQ_BACKTRACE).
type Error struct {
	kind      Kind
	backtrace *trace.Backtrace
}

// Kind returns the classification of the error. The returned value is the
// envelope's own kind; there is no mutation path back into the envelope.
func (e *Error) Kind() Kind { return e.kind }

// Error renders the kind's display text; when a backtrace was captured it
// is appended after the text, one frame per line.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.backtrace != nil {
		return e.kind.Error() + e.backtrace.String()
	}
	return e.kind.Error()
}

// Unwrap exposes the wrapped foreign error for errors.Is / errors.As.
// Local kinds (Message, Msg, Timeout) have no cause; Unwrap returns nil.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	switch k := e.kind.(type) {
	case Security:
		if k.Err != nil {
			return k.Err
		}
	case IO:
		if k.Err != nil {
			return k.Err
		}
	case Protocol:
		if k.Err != nil {
			return k.Err
		}
	case Send:
		if k.Err != nil {
			return k.Err
		}
	}
	return nil
}

// Clone returns an independent copy of the error. The copy is faithful for
// every kind except IO, which keeps only the wrapped error's classification
// label; see IO.Clone.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	return &Error{
		kind:      e.kind.Clone(),
		backtrace: e.backtrace.Clone(),
	}
}

// IsTimeout reports whether the error carries the canonical Timeout kind.
func (e *Error) IsTimeout() bool {
	if e == nil {
		return false
	}
	_, ok := e.kind.(Timeout)
	return ok
}
