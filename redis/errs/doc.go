// Package errs provides the structured error types raised by the connection
// core. Every failure carries a kind that tells callers which boundary
// failed: allocating a transport handle, completing the handshake,
// configuring the socket, speaking the wire protocol, or a well-formed
// error reply from the server itself.
package errs
