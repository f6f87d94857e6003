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

package clienterr

import (
	"errors"
	"io"
	"net"
	"os"
	"syscall"

	"resolvq.dev/clienterr/protoerr"
	"resolvq.dev/clienterr/queue"
	"resolvq.dev/clienterr/secerr"
)

// Kind is the closed classification of a client error. Exactly seven types
// implement it — Message, Msg, Security, IO, Protocol, Send and Timeout —
// and callers match on them with a type switch:
//
//	switch k := err.Kind().(type) {
//	case clienterr.Timeout:
//	    // retry with a longer deadline
//	case clienterr.Protocol:
//	    // inspect k.Err
//	}
//
// Every Kind renders a short, fixed display phrase through its Error method.
// The wrapped variants keep the phrase generic ("security error", "io
// error", ...); the underlying value stays reachable through the field and
// through Error.Unwrap.
type Kind interface {
	error

	// Clone returns an independent copy of the kind. All variants copy
	// their payload faithfully except IO; see IO.Clone.
	Clone() Kind

	sealed()
}

// Message is a fixed, human-readable label. The text is treated as opaque:
// it is never inspected for timeout semantics, even if it happens to say
// "timeout".
type Message struct {
	Text string
}

// Error returns the label verbatim, or "unknown error" for an empty label
// so that display output is never empty.
func (k Message) Error() string {
	if k.Text == "" {
		return "unknown error"
	}
	return k.Text
}

// Clone returns the kind unchanged; the label is immutable.
func (k Message) Clone() Kind { return k }

func (Message) sealed() {}

// Msg is a dynamically constructed, human-readable message. Like Message,
// the text is opaque and never timeout-normalized.
type Msg struct {
	Text string
}

// Error returns the message verbatim, or "unknown error" when empty.
func (k Msg) Error() string {
	if k.Text == "" {
		return "unknown error"
	}
	return k.Text
}

// Clone returns the kind unchanged.
func (k Msg) Clone() Kind { return k }

func (Msg) sealed() {}

// Security wraps a failure raised by the security/validation layer. A
// security error classifying as a timeout never reaches this variant: the
// conversion boundary re-tags it as Timeout first.
type Security struct {
	Err *secerr.Error
}

// Error returns the fixed phrase "security error".
func (Security) Error() string { return "security error" }

// Clone copies the wrapped security error faithfully.
func (k Security) Clone() Kind { return Security{Err: k.Err.Clone()} }

func (Security) sealed() {}

// IO wraps a failure raised by the byte-stream layer. As with Security,
// deadline failures are normalized to Timeout before this variant is built.
type IO struct {
	Err error
}

// Error returns the fixed phrase "io error".
func (IO) Error() string { return "io error" }

// Clone reconstructs the wrapped I/O error from its classification label
// alone, discarding any attached message or payload. A generic I/O error
// may hold non-cloneable platform detail (wrapped syscall state, address
// structs), so the copy keeps only the coarse class reported by IOClass.
// This is a known, deliberate degradation on clone; the label survives
// further cloning unchanged.
func (k IO) Clone() Kind {
	return IO{Err: &classedError{class: IOClass(k.Err)}}
}

func (IO) sealed() {}

// Protocol wraps a failure raised by the wire-protocol layer.
type Protocol struct {
	Err *protoerr.Error
}

// Error returns the fixed phrase "proto error".
func (Protocol) Error() string { return "proto error" }

// Clone copies the wrapped protocol error faithfully.
func (k Protocol) Clone() Kind { return Protocol{Err: k.Err.Clone()} }

func (Protocol) sealed() {}

// Send wraps a failed delivery on the client's internal message queue.
type Send struct {
	Err *queue.SendError
}

// Error renders "error sending to queue" followed by the delivery failure
// detail.
func (k Send) Error() string {
	if k.Err == nil {
		return "error sending to queue"
	}
	return "error sending to queue: " + k.Err.Error()
}

// Clone copies the wrapped send error faithfully.
func (k Send) Clone() Kind {
	if k.Err == nil {
		return k
	}
	cp := *k.Err
	return Send{Err: &cp}
}

func (Send) sealed() {}

// Timeout reports that the operation exceeded its deadline, regardless of
// which layer detected it. It is the single canonical representation of
// "deadline exceeded": the conversion boundary re-tags foreign timeout
// signals as Timeout before they reach the taxonomy, and a Timeout is never
// reclassified afterwards.
type Timeout struct{}

// Error returns the fixed phrase "request timed out".
func (Timeout) Error() string { return "request timed out" }

// Clone returns the kind unchanged.
func (k Timeout) Clone() Kind { return k }

func (Timeout) sealed() {}

// classedError is what an IO kind's wrapped error decays to on clone: the
// classification label and nothing else.
type classedError struct {
	class string
}

func (e *classedError) Error() string { return e.class }

// IOClass returns the coarse classification label for a generic I/O error.
// Labels are stable across releases and re-derivable from a cloned value,
// so repeated cloning of an IO kind preserves the class while the original
// message stays lost. Unrecognized errors fall back to "io error".
func IOClass(err error) string {
	var ce *classedError
	switch {
	case err == nil:
		return "io error"
	case errors.As(err, &ce):
		return ce.class
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "unexpected eof"
	case errors.Is(err, io.EOF):
		return "eof"
	case errors.Is(err, net.ErrClosed):
		return "connection closed"
	case errors.Is(err, os.ErrDeadlineExceeded):
		return "timed out"
	case errors.Is(err, syscall.ECONNRESET):
		return "connection reset"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "connection refused"
	case errors.Is(err, syscall.EPIPE):
		return "broken pipe"
	default:
		return "io error"
	}
}
