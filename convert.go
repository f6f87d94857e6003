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
	"context"
	"fmt"
	"os"

	"resolvq.dev/clienterr/internal/trace"
	"resolvq.dev/clienterr/protoerr"
	"resolvq.dev/clienterr/queue"
	"resolvq.dev/clienterr/secerr"
)

// FromKind wraps a Kind into an Error, capturing a backtrace snapshot at
// the moment of conversion when diagnostics are enabled. Every other
// constructor in this file funnels through it, so the snapshot always
// records the boundary where the failure was first observed.
func FromKind(k Kind) *Error {
	return &Error{kind: k, backtrace: trace.Capture(1)}
}

// New builds an Error carrying a fixed message label (the Message kind).
// The text carries no deadline semantics and is never timeout-normalized.
func New(text string) *Error {
	return FromKind(Message{Text: text})
}

// Errorf builds an Error carrying a formatted message (the Msg kind).
// Like New, the text is never timeout-normalized.
func Errorf(format string, args ...any) *Error {
	return FromKind(Msg{Text: fmt.Sprintf(format, args...)})
}

// FromSend wraps a queue delivery failure as the Send kind.
func FromSend(err *queue.SendError) *Error {
	return FromKind(Send{Err: err})
}

// FromSecurity converts a security-layer error. A security error whose own
// kind is a timeout becomes the canonical Timeout, and the original value
// is dropped: the foreign timeout signal must not survive as nested detail
// once it has been re-tagged. Everything else wraps as Security.
func FromSecurity(err *secerr.Error) *Error {
	if err != nil && err.Kind() == secerr.KindTimeout {
		return FromKind(Timeout{})
	}
	return FromKind(Security{Err: err})
}

// FromIO converts a generic I/O error, normalizing deadline failures to the
// Timeout kind.
//
// Only the immediate classification of err is consulted: identity against
// the deadline sentinels and err's own Timeout method. A timeout buried
// deeper in err's cause chain is not unwrapped and stays classified as IO.
// That boundary is part of the observable contract — do not replace these
// checks with a deep errors.Is walk.
func FromIO(err error) *Error {
	if ioTimedOut(err) {
		return FromKind(Timeout{})
	}
	return FromKind(IO{Err: err})
}

// FromProtocol converts a wire-protocol error, normalizing its own timeout
// kind by the same single-level rule as FromSecurity.
func FromProtocol(err *protoerr.Error) *Error {
	if err != nil && err.Kind() == protoerr.KindTimeout {
		return FromKind(Timeout{})
	}
	return FromKind(Protocol{Err: err})
}

// ioTimedOut reports whether err itself classifies as "timed out". Direct
// comparisons only; nested causes are out of bounds here.
func ioTimedOut(err error) bool {
	if err == os.ErrDeadlineExceeded || err == context.DeadlineExceeded {
		return true
	}
	t, ok := err.(interface{ Timeout() bool })
	return ok && t.Timeout()
}
