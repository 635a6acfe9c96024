package conn

import (
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// The registry tracks every live connection for external pooling and
// health-check collaborators. It is bookkeeping only: the core never acts
// on it (no idle reaping, no staleness policy).

var (
	liveConns  = xsync.NewMapOf[uint64, *Connection]()
	nextConnID uint64
)

// register adds a freshly built connection to the registry
func register(c *Connection) {
	c.id = atomic.AddUint64(&nextConnID, 1)
	liveConns.Store(c.id, c)
}

// unregister drops a connection on Close
func unregister(c *Connection) {
	if c.id != 0 {
		liveConns.Delete(c.id)
	}
}

// Count returns the number of live connections
func Count() int {
	return liveConns.Size()
}

// ForEach visits every live connection. The visitor must not retain the
// connection or call its I/O methods; it runs concurrently with the
// owning goroutine.
func ForEach(fn func(c *Connection)) {
	liveConns.Range(func(_ uint64, c *Connection) bool {
		fn(c)
		return true
	})
}

// IdleSince returns the number of live connections whose last activity is
// older than t. Convenience for pool health checks.
func IdleSince(t time.Time) int {
	n := 0
	ForEach(func(c *Connection) {
		if c.LastActive().Before(t) {
			n++
		}
	})
	return n
}
