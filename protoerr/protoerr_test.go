package protoerr

import "testing"

func TestDisplay(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{New(KindBadWireData, "opcode 13"), "bad wire data: opcode 13"},
		{New(KindTruncated, ""), "message truncated"},
		{New(KindBusy, ""), "peer busy"},
		{New(KindTimeout, ""), "request timed out"},
		{Errorf(KindMessage, "unexpected id %d", 42), "proto error: unexpected id 42"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("display = %q, want %q", got, c.want)
		}
	}
}

func TestTimeoutClassification(t *testing.T) {
	if !New(KindTimeout, "").Timeout() {
		t.Fatal("KindTimeout must classify as timeout")
	}
	if New(KindBusy, "").Timeout() {
		t.Fatal("KindBusy must not classify as timeout")
	}
}

func TestClone(t *testing.T) {
	orig := New(KindTruncated, "short read")
	cp := orig.Clone()
	if cp == orig || cp.Error() != orig.Error() || cp.Kind() != orig.Kind() {
		t.Fatal("clone must be a faithful, independent copy")
	}
}
