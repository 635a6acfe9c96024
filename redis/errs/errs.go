package errs

import (
	"errors"
	"fmt"
)

// Kind identifies the failure category of a connection-core error.
type Kind string

const (
	// KindAllocation indicates that no transport handle could be produced
	// at all (unusable options, resource exhaustion at connect time).
	KindAllocation Kind = "allocation"
	// KindConnection indicates that a handle exists but reports itself
	// broken (refused, unreachable, reset during the handshake).
	KindConnection Kind = "connection"
	// KindConfiguration indicates that a post-connect socket setup call
	// (timeout, keep-alive) was rejected by the transport layer.
	KindConfiguration Kind = "configuration"
	// KindProtocol indicates a send or receive failure at the
	// transport/encoding level. The connection is broken afterwards.
	KindProtocol Kind = "protocol"
	// KindTimeout indicates that the configured socket timeout elapsed
	// during a read or write. The connection is broken afterwards.
	KindTimeout Kind = "timeout"
	// KindReply indicates a well-formed error reply from the server.
	// The connection itself remains usable.
	KindReply Kind = "reply"
)

// E is the error envelope raised across the connection core.
type E struct {
	Kind Kind
	Op   string // the failing operation, e.g. "connect", "send", "recv"
	Msg  string // human-readable diagnostic, sourced from the transport layer

	cause error
}

// New constructs an error envelope without an underlying cause.
func New(kind Kind, op, msg string) *E {
	return &E{Kind: kind, Op: op, Msg: msg}
}

// Wrap constructs an error envelope around an underlying cause.
func Wrap(kind Kind, op, msg string, cause error) *E {
	return &E{Kind: kind, Op: op, Msg: msg, cause: cause}
}

func (e *E) Error() string {
	switch {
	case e.Msg != "" && e.cause != nil:
		return fmt.Sprintf("redis %s: %s: %s: %v", e.Op, e.Kind, e.Msg, e.cause)
	case e.Msg != "":
		return fmt.Sprintf("redis %s: %s: %s", e.Op, e.Kind, e.Msg)
	case e.cause != nil:
		return fmt.Sprintf("redis %s: %s: %v", e.Op, e.Kind, e.cause)
	default:
		return fmt.Sprintf("redis %s: %s", e.Op, e.Kind)
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *E) Unwrap() error {
	return e.cause
}

// Timeout reports whether the error is a timeout, satisfying the net.Error
// convention used by callers that only look for deadline expiry.
func (e *E) Timeout() bool {
	return e.Kind == KindTimeout
}

// KindOf returns the kind of err, or the empty string if err was not
// produced by the connection core.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsTimeout reports whether err was caused by an elapsed socket timeout.
func IsTimeout(err error) bool {
	return IsKind(err, KindTimeout)
}

// IsReply reports whether err is a server-reported error reply, i.e. the
// command failed but the transport did not.
func IsReply(err error) bool {
	return IsKind(err, KindReply)
}
