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

package secerr

import "fmt"

// Kind classifies a security-layer failure.
type Kind int

const (
	// KindMessage is a generic security failure described only by its text.
	KindMessage Kind = iota

	// KindVerify indicates that a signature or MAC did not verify against
	// the presented material.
	KindVerify

	// KindKey indicates that a key was rejected: unsupported algorithm,
	// wrong length, or revoked.
	KindKey

	// KindNotReady indicates that required security material (trust anchors,
	// session keys) is not yet available.
	KindNotReady

	// KindTimeout indicates that the security operation exceeded its
	// deadline.
	KindTimeout
)

// String returns the fixed display phrase for the kind.
func (k Kind) String() string {
	switch k {
	case KindVerify:
		return "verification failed"
	case KindKey:
		return "key rejected"
	case KindNotReady:
		return "security material not ready"
	case KindTimeout:
		return "request timed out"
	default:
		return "security error"
	}
}

// Error is a failure raised by the security layer. It pairs a Kind with an
// optional free-form message and is immutable after construction.
type Error struct {
	kind Kind
	msg  string
}

// New builds an Error of the given kind. msg may be empty.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Kind returns the classification of the error.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the built-in error interface. The kind phrase always
// leads; the message, when present, follows after a colon.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.msg == "" {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.msg
}

// Timeout reports whether the error classifies as a deadline failure.
func (e *Error) Timeout() bool { return e != nil && e.kind == KindTimeout }

// Clone returns an independent copy of the error. Cloning nil yields nil.
func (e *Error) Clone() *Error {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}
