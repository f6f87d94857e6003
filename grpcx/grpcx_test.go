package grpcx

import (
	"errors"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"resolvq.dev/clienterr"
	"resolvq.dev/clienterr/protoerr"
	"resolvq.dev/clienterr/secerr"
)

func TestToStatus_Codes(t *testing.T) {
	cases := []struct {
		e    *clienterr.Error
		want gcodes.Code
	}{
		{clienterr.FromKind(clienterr.Timeout{}), gcodes.DeadlineExceeded},
		{clienterr.FromSecurity(secerr.New(secerr.KindVerify, "")), gcodes.Unauthenticated},
		{clienterr.FromIO(errors.New("broken pipe")), gcodes.Unavailable},
		{clienterr.FromProtocol(protoerr.New(protoerr.KindTruncated, "")), gcodes.Internal},
		{clienterr.New("boom"), gcodes.Unknown},
	}
	for _, c := range cases {
		if got := ToStatus(c.e).Code(); got != c.want {
			t.Fatalf("%v -> %v, want %v", c.e, got, c.want)
		}
	}
}

func TestErrorInfoDetail(t *testing.T) {
	err := ToError(clienterr.FromKind(clienterr.Timeout{}))
	info, ok := ExtractInfo(err)
	if !ok {
		t.Fatalf("no ErrorInfo attached to %v", err)
	}
	want := &errdetails.ErrorInfo{Reason: "TIMEOUT", Domain: Domain}
	if !proto.Equal(info, want) {
		t.Fatalf("ErrorInfo = %v, want %v", info, want)
	}
}

func TestFromStatus(t *testing.T) {
	e := FromStatus(gstatus.Error(gcodes.DeadlineExceeded, "deadline"))
	if !e.IsTimeout() {
		t.Fatalf("DeadlineExceeded must map to Timeout, got %T", e.Kind())
	}

	e = FromStatus(gstatus.Error(gcodes.NotFound, "no such zone"))
	if _, ok := e.Kind().(clienterr.Msg); !ok {
		t.Fatalf("non-deadline status must carry as Msg, got %T", e.Kind())
	}

	e = FromStatus(errors.New("not a status"))
	if _, ok := e.Kind().(clienterr.Msg); !ok {
		t.Fatalf("plain errors must carry as Msg, got %T", e.Kind())
	}

	if FromStatus(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestRoundTrip_TimeoutSurvivesGateway(t *testing.T) {
	// Client -> gateway -> client: the timeout classification must not be
	// lost crossing the RPC boundary in either direction.
	e := FromStatus(ToError(clienterr.FromKind(clienterr.Timeout{})))
	if !e.IsTimeout() {
		t.Fatalf("timeout lost in round trip: %v", e)
	}
}
