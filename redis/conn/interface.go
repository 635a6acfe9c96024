package conn

import (
	"time"

	"github.com/ValentinKolb/redic/redis/resp"
)

var _ IConnection = (*Connection)(nil)

// IConnection is the surface the higher-level client layers consume: a
// command channel with pipelined send/receive, a broken-state query, and
// the reconnect primitive.
type IConnection interface {
	// Send serializes one command into the outbound buffer without
	// flushing it to the wire
	Send(args *resp.CmdArgs) error

	// SendArgv is Send for a pre-built argument vector
	SendArgv(argv ...[]byte) error

	// Recv flushes pending commands and blocks until one full reply is
	// parsed or the socket timeout elapses. Ownership of the reply
	// transfers to the caller.
	Recv() (*resp.Reply, error)

	// Broken reports whether the underlying transport has seen a fatal
	// failure. Non-blocking.
	Broken() bool

	// Reconnect atomically replaces the transport with a freshly built
	// one from the stored options, or leaves the connection untouched
	// if the rebuild fails
	Reconnect() error

	// LastActive returns the time of the most recent I/O activity.
	// Informational state for external pooling collaborators; the
	// connection enforces no staleness policy itself.
	LastActive() time.Time

	// Close releases the transport handle
	Close() error
}
