package queue

import (
	"context"
	"errors"
	"testing"
)

func TestTrySend_FullAndClosed(t *testing.T) {
	q := New[int](1)
	if err := q.TrySend(1); err != nil {
		t.Fatalf("send into empty queue: %v", err)
	}
	err := q.TrySend(2)
	if err == nil || !err.Full() {
		t.Fatalf("expected full, got %v", err)
	}

	q.Close()
	err = q.TrySend(3)
	if err == nil || !err.Closed() {
		t.Fatalf("expected closed, got %v", err)
	}
}

func TestRecv(t *testing.T) {
	q := New[string](2)
	if err := q.TrySend("a"); err != nil {
		t.Fatalf("send: %v", err)
	}
	v, err := q.Recv(context.Background())
	if err != nil || v != "a" {
		t.Fatalf("recv = %q, %v", v, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := q.Recv(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	q.Close()
	if _, err := q.Recv(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestClose_DrainsBuffered(t *testing.T) {
	q := New[int](2)
	_ = q.TrySend(1)
	_ = q.TrySend(2)
	q.Close()
	q.Close() // idempotent

	for want := 1; want <= 2; want++ {
		v, err := q.Recv(context.Background())
		if err != nil || v != want {
			t.Fatalf("recv after close = %d, %v; want %d", v, err, want)
		}
	}
	if _, err := q.Recv(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("drained queue must report ErrClosed, got %v", err)
	}
}

func TestSendError_Display(t *testing.T) {
	if got := (&SendError{Reason: ReasonFull}).Error(); got != "queue full" {
		t.Fatalf("display = %q", got)
	}
	if got := (&SendError{Reason: ReasonClosed}).Error(); got != "queue closed" {
		t.Fatalf("display = %q", got)
	}
}

func TestCapacityFloor(t *testing.T) {
	q := New[int](0)
	if err := q.TrySend(1); err != nil {
		t.Fatalf("capacity must be raised to 1: %v", err)
	}
}
