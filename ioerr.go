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
	"net"
	"os"
)

// IOError converts e into a generic I/O-style error for code that only
// understands that vocabulary.
//
// A Timeout envelope yields an error whose Timeout method reports true and
// which matches os.ErrDeadlineExceeded under errors.Is; every other kind
// collapses to an unclassified error. This binary timeout/other collapse is
// the only classification loss permitted in the outbound direction. The
// envelope rides along as the detail: its display text and, via Unwrap, the
// value itself.
func (e *Error) IOError() error {
	if e == nil {
		return nil
	}
	return &ioError{timeout: e.IsTimeout(), cause: e}
}

// ioError adapts an Error to the net.Error style I/O vocabulary.
type ioError struct {
	timeout bool
	cause   *Error
}

var _ net.Error = (*ioError)(nil)

func (e *ioError) Error() string   { return e.cause.Error() }
func (e *ioError) Timeout() bool   { return e.timeout }
func (e *ioError) Temporary() bool { return e.timeout }
func (e *ioError) Unwrap() error   { return e.cause }

// Is lets errors.Is(err, os.ErrDeadlineExceeded) observe the timeout
// classification without reaching into the envelope.
func (e *ioError) Is(target error) bool {
	return e.timeout && target == os.ErrDeadlineExceeded
}
