package errs

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestKindClassification(t *testing.T) {
	kinds := []Kind{
		KindAllocation,
		KindConnection,
		KindConfiguration,
		KindProtocol,
		KindTimeout,
		KindReply,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			err := New(kind, "connect", "boom")
			if !IsKind(err, kind) {
				t.Errorf("expected IsKind to match %s", kind)
			}
			if KindOf(err) != kind {
				t.Errorf("expected KindOf to return %s, got %s", kind, KindOf(err))
			}
		})
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty kind for foreign error, got %s", got)
	}
	if IsKind(nil, KindProtocol) {
		t.Errorf("expected IsKind(nil) to be false")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := os.ErrDeadlineExceeded
	err := Wrap(KindTimeout, "recv", "failed to get reply", cause)

	if !errors.Is(err, os.ErrDeadlineExceeded) {
		t.Errorf("expected wrapped cause to be reachable via errors.Is")
	}
	if !IsTimeout(err) {
		t.Errorf("expected IsTimeout to be true")
	}

	var e *E
	if !errors.As(err, &e) {
		t.Fatalf("expected errors.As to find envelope")
	}
	if !e.Timeout() {
		t.Errorf("expected Timeout() to be true for timeout kind")
	}
}

func TestWrapThroughFmtErrorf(t *testing.T) {
	// Kinds survive another %w layer added by callers
	inner := New(KindReply, "recv", "ERR invalid password")
	outer := fmt.Errorf("setup failed: %w", inner)

	if !IsReply(outer) {
		t.Errorf("expected reply kind to survive wrapping")
	}
}

func TestErrorText(t *testing.T) {
	tests := map[string]error{
		"redis connect: connection: refused":         New(KindConnection, "connect", "refused"),
		"redis recv: timeout: slow: deadline":        Wrap(KindTimeout, "recv", "slow", errors.New("deadline")),
		"redis send: protocol: broken pipe":          Wrap(KindProtocol, "send", "", errors.New("broken pipe")),
		"redis connect: allocation":                  New(KindAllocation, "connect", ""),
	}

	for want, err := range tests {
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	}
}
