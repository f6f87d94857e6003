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

// Package trace provides optional call-stack capture for error construction.
//
// Capture is off by default so that building an error costs nothing beyond
// the allocation of the error itself. It is switched on process-wide via the
// RESOLVQ_BACKTRACE environment variable (values "1", "true" or "full"),
// read once at startup, or programmatically via SetEnabled.
package trace

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
)

// captureDepth bounds the number of frames recorded per snapshot.
const captureDepth = 32

var enabled atomic.Bool

func init() {
	switch os.Getenv("RESOLVQ_BACKTRACE") {
	case "1", "true", "full":
		enabled.Store(true)
	}
}

// Enabled reports whether backtrace capture is currently on.
func Enabled() bool { return enabled.Load() }

// SetEnabled overrides the environment-derived setting for the whole
// process. Intended for tests and for embedders that manage their own
// diagnostics configuration.
func SetEnabled(on bool) { enabled.Store(on) }

// Backtrace is an immutable snapshot of the call stack taken at the moment
// an error was constructed. The zero of *Backtrace (nil) means "nothing was
// captured" and renders as the empty string.
type Backtrace struct {
	pcs []uintptr
}

// Capture records the current call stack and returns it as a Backtrace.
// It returns nil when capture is disabled or when no frames are available.
//
// skip counts additional frames to omit above Capture itself: Capture(0)
// starts the snapshot at Capture's caller.
func Capture(skip int) *Backtrace {
	if !enabled.Load() {
		return nil
	}
	pcs := make([]uintptr, captureDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	return &Backtrace{pcs: pcs[:n]}
}

// Clone returns an independent copy of the snapshot. Cloning nil yields nil.
func (b *Backtrace) Clone() *Backtrace {
	if b == nil {
		return nil
	}
	pcs := make([]uintptr, len(b.pcs))
	copy(pcs, b.pcs)
	return &Backtrace{pcs: pcs}
}

// String resolves the recorded program counters and renders one frame per
// line, each indented below the error text it is appended to.
func (b *Backtrace) String() string {
	if b == nil || len(b.pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(b.pcs)
	for {
		fr, more := frames.Next()
		fmt.Fprintf(&sb, "\n\t%s\n\t\t%s:%d", fr.Function, fr.File, fr.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
