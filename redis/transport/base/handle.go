package base

import (
	"bufio"
	"fmt"
	"net"
	"sync/atomic"
	"time"
)

const readBufferSize = 32 * 1024 // 32 KB

// Handle is the transport handle owned by exactly one connection at a
// time: the OS-level connection plus its protocol read/write buffers.
//
// Commands accumulate in the outbound buffer via Append and reach the wire
// only when Flush is called, which is what makes pipelining work: N
// appended commands go out together before the first reply is read.
//
// Any fatal I/O failure sets the broken flag; a broken handle rejects all
// further use until it is replaced via reconnect. The flag is intrinsic to
// the handle, not the connection, so a swapped-out handle keeps reporting
// its own state until it is released.
type Handle struct {
	conn    net.Conn
	rd      *bufio.Reader
	out     []byte
	timeout time.Duration

	broken atomic.Bool
	diag   atomic.Pointer[string]
}

// NewHandle wraps a live connection. timeout bounds every subsequent
// read/write; zero or negative means block indefinitely.
func NewHandle(conn net.Conn, timeout time.Duration) *Handle {
	return &Handle{
		conn:    conn,
		rd:      bufio.NewReaderSize(conn, readBufferSize),
		timeout: timeout,
	}
}

// NewBrokenHandle creates a handle that failed before a connection could
// be established. The handle exists so the caller can inspect the broken
// flag and diagnostic, mirroring a handshake that produced a dead socket.
func NewBrokenHandle(diag string) *Handle {
	h := &Handle{}
	h.Fail(fmt.Errorf("%s", diag))
	return h
}

// Append adds the encoded bytes of one command to the outbound buffer.
// Nothing is written to the wire until Flush.
func (h *Handle) Append(p []byte) error {
	if h.Broken() {
		return fmt.Errorf("handle is broken: %s", h.Diagnostic())
	}
	if h.conn == nil {
		return fmt.Errorf("handle has no connection")
	}
	h.out = append(h.out, p...)
	return nil
}

// Flush writes the outbound buffer to the wire. The buffer is cleared on
// success; on failure the handle is marked broken.
func (h *Handle) Flush() error {
	if h.Broken() {
		return fmt.Errorf("handle is broken: %s", h.Diagnostic())
	}
	if len(h.out) == 0 {
		return nil
	}

	if err := h.armDeadline(h.conn.SetWriteDeadline); err != nil {
		h.Fail(err)
		return err
	}
	if _, err := h.conn.Write(h.out); err != nil {
		h.Fail(err)
		return err
	}

	h.out = h.out[:0]
	return nil
}

// Reader exposes the buffered inbound side of the handle for the reply
// parser. ArmReadDeadline must be called before each blocking parse.
func (h *Handle) Reader() *bufio.Reader {
	return h.rd
}

// ArmReadDeadline applies the configured socket timeout to the next read.
func (h *Handle) ArmReadDeadline() error {
	if h.conn == nil {
		return fmt.Errorf("handle has no connection")
	}
	return h.armDeadline(h.conn.SetReadDeadline)
}

// armDeadline sets or clears a deadline according to the socket timeout.
// Timeouts are truncated to microsecond resolution, the granularity of the
// underlying socket option.
func (h *Handle) armDeadline(set func(time.Time) error) error {
	if h.timeout <= 0 {
		return set(time.Time{})
	}
	return set(time.Now().Add(h.timeout.Truncate(time.Microsecond)))
}

// Fail marks the handle broken, keeping the diagnostic of the first
// failure observed.
func (h *Handle) Fail(err error) {
	if h.broken.CompareAndSwap(false, true) {
		diag := err.Error()
		h.diag.Store(&diag)
	}
}

// Broken reports whether the handle has seen a fatal failure. Safe to call
// concurrently with other operations.
func (h *Handle) Broken() bool {
	return h.broken.Load()
}

// Diagnostic returns the text of the failure that broke the handle, or the
// empty string for a healthy handle.
func (h *Handle) Diagnostic() string {
	if p := h.diag.Load(); p != nil {
		return *p
	}
	return ""
}

// RemoteDescription renders the peer the handle is connected to, e.g.
// "127.0.0.1:6379" or a socket path.
func (h *Handle) RemoteDescription() string {
	if h.conn == nil {
		return "(disconnected)"
	}
	return h.conn.RemoteAddr().String()
}

// Close releases the OS-level connection. The handle is unusable
// afterwards.
func (h *Handle) Close() error {
	if h.conn == nil {
		return nil
	}
	err := h.conn.Close()
	h.conn = nil
	return err
}
