package secerr

import "testing"

func TestDisplay(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{New(KindVerify, "bad signature"), "verification failed: bad signature"},
		{New(KindKey, ""), "key rejected"},
		{New(KindTimeout, ""), "request timed out"},
		{Errorf(KindMessage, "rrsig expired %d days ago", 3), "security error: rrsig expired 3 days ago"},
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
	if New(KindVerify, "").Timeout() {
		t.Fatal("KindVerify must not classify as timeout")
	}
}

func TestClone(t *testing.T) {
	orig := New(KindKey, "rsa too short")
	cp := orig.Clone()
	if cp == orig {
		t.Fatal("clone must not alias")
	}
	if cp.Kind() != orig.Kind() || cp.Error() != orig.Error() {
		t.Fatal("clone must be faithful")
	}
	var nilErr *Error
	if nilErr.Clone() != nil {
		t.Fatal("nil clone must stay nil")
	}
}
