package resp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ValentinKolb/redic/redis/errs"
)

// --------------------------------------------------------------------------
// Reply kinds
// --------------------------------------------------------------------------

// ReplyKind discriminates the possible shapes of a parsed reply
type ReplyKind byte

const (
	ReplyStatus ReplyKind = iota
	ReplyError
	ReplyInteger
	ReplyBulk
	ReplyNil
	ReplyArray
)

// String returns the protocol name of the reply kind
func (k ReplyKind) String() string {
	switch k {
	case ReplyStatus:
		return "status"
	case ReplyError:
		return "error"
	case ReplyInteger:
		return "integer"
	case ReplyBulk:
		return "bulk"
	case ReplyNil:
		return "nil"
	case ReplyArray:
		return "array"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Reply struct
// --------------------------------------------------------------------------

// Reply is one parsed protocol reply. Ownership transfers to the caller of
// Connection.Recv; the reply holds no reference to the wire buffers.
//
// Which fields are meaningful depends on Kind: Str for status, error and
// bulk replies, Int for integer replies, Elems for array replies.
type Reply struct {
	Kind  ReplyKind
	Str   []byte
	Int   int64
	Elems []*Reply
}

// IsError reports whether the reply is a server-reported error
func (r *Reply) IsError() bool {
	return r.Kind == ReplyError
}

// IsNil reports whether the reply is a protocol nil (missing key,
// empty result)
func (r *Reply) IsNil() bool {
	return r.Kind == ReplyNil
}

// IsOKStatus reports whether the reply is the +OK status
func (r *Reply) IsOKStatus() bool {
	return r.Kind == ReplyStatus && string(r.Str) == "OK"
}

// ExpectOKStatus returns a reply-kind error unless r is the +OK status.
// Used by the connection setup steps (AUTH, SELECT) which require plain
// acknowledgement.
func ExpectOKStatus(r *Reply) error {
	if r.IsOKStatus() {
		return nil
	}
	return errs.New(errs.KindReply, "recv",
		fmt.Sprintf("expected OK status, got %s reply %q", r.Kind, r.Display()))
}

// Display renders the reply for logs and CLI output
func (r *Reply) Display() string {
	switch r.Kind {
	case ReplyStatus, ReplyError:
		return string(r.Str)
	case ReplyInteger:
		return strconv.FormatInt(r.Int, 10)
	case ReplyBulk:
		return string(r.Str)
	case ReplyNil:
		return "(nil)"
	case ReplyArray:
		parts := make([]string, len(r.Elems))
		for i, e := range r.Elems {
			parts[i] = e.Display()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "(unknown)"
	}
}
