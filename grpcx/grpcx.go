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

package grpcx

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"resolvq.dev/clienterr"
)

// Domain is the error domain reported in the ErrorInfo detail attached to
// outgoing statuses.
const Domain = "resolvq.dev"

// ToStatus maps a client error onto a gRPC status for callers that embed
// the client behind an RPC gateway.
//
// The kind collapses onto the closest canonical gRPC code; the kind's
// stable reason label travels alongside as an errdetails.ErrorInfo so the
// receiving side can recover the classification without parsing the
// message.
func ToStatus(e *clienterr.Error) *gstatus.Status {
	if e == nil {
		return nil
	}
	base := gstatus.New(codeFor(e.Kind()), e.Error())
	info := &errdetails.ErrorInfo{
		Reason: ReasonLabel(e.Kind()),
		Domain: Domain,
	}
	// Try to attach the detail. If it fails — return base.
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// ToError is ToStatus followed by Err. It returns nil for a nil error.
func ToError(e *clienterr.Error) error {
	if e == nil {
		return nil
	}
	return ToStatus(e).Err()
}

// FromStatus converts a gRPC error back into a client error.
// DeadlineExceeded becomes the canonical Timeout; every other status is
// carried as a message, since the gRPC vocabulary cannot name which client
// subsystem failed.
func FromStatus(err error) *clienterr.Error {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return clienterr.Errorf("%v", err)
	}
	if st.Code() == gcodes.DeadlineExceeded {
		return clienterr.FromKind(clienterr.Timeout{})
	}
	return clienterr.Errorf("%s: %s", st.Code(), st.Message())
}

// ExtractInfo pulls the ErrorInfo detail out of a gRPC error, if present.
// Useful in tests and in client code on the receiving side of a gateway.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ReasonLabel returns the stable, machine-readable label for a kind. Labels
// are part of the wire contract with gateway peers and must not change.
func ReasonLabel(k clienterr.Kind) string {
	switch k.(type) {
	case clienterr.Timeout:
		return "TIMEOUT"
	case clienterr.Security:
		return "SECURITY"
	case clienterr.IO:
		return "IO"
	case clienterr.Protocol:
		return "PROTO"
	case clienterr.Send:
		return "QUEUE_SEND"
	default:
		return "MESSAGE"
	}
}

// codeFor collapses a kind onto the closest canonical gRPC code.
func codeFor(k clienterr.Kind) gcodes.Code {
	switch k.(type) {
	case clienterr.Timeout:
		return gcodes.DeadlineExceeded
	case clienterr.Security:
		return gcodes.Unauthenticated
	case clienterr.IO:
		return gcodes.Unavailable
	case clienterr.Protocol:
		return gcodes.Internal
	case clienterr.Send:
		return gcodes.ResourceExhausted
	default:
		return gcodes.Unknown
	}
}
