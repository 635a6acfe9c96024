// Package conn implements the Connection: one exclusively-owned transport
// handle plus the options it was built from, exposing the send/receive
// primitives of the pipelined request/response protocol.
//
// A Connection is purely synchronous. Send appends one encoded command to
// the outbound buffer; Recv flushes pending commands and blocks until one
// full reply is parsed or the socket timeout elapses. Replies come back in
// strict send order, so N sends must be followed by exactly N receives.
// A single Connection is not safe for concurrent use - serialization
// across goroutines, pooling and retry scheduling belong to the caller.
//
// Construction runs the session setup (AUTH when a password is configured,
// SELECT when a non-zero database index is configured) before the
// Connection is handed out: a Connection that exists is authenticated and
// on the right database, or it was never returned at all.
//
// When the transport breaks, operations fail with protocol- or
// timeout-kind errors and Broken reports true until Reconnect replaces
// the handle with a freshly built one.
package conn
