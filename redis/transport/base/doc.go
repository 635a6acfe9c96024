// Package base provides the foundation for transport media in the
// connection core, implementing the connect flow and the transport handle
// independent of the specific network protocol (TCP, Unix sockets). It is
// extended with protocol-specific dialers by the sibling packages.
//
// Key Components:
//
//   - IDialer: Interface for protocol-specific operations (dialing and
//     post-connect socket configuration) that allows extending the base
//     connector with different network protocols.
//
//   - IConnector: The connect flow itself - resolve and dial the endpoint
//     (with a deadline only when a connect timeout is configured), apply
//     the socket timeout and keep-alive settings, and hand back a Handle.
//
//   - Handle: The exclusively-owned transport handle. It owns the net.Conn,
//     a buffered reader, and an outbound append buffer for pipelined
//     commands, and carries the broken flag set on any fatal I/O failure.
//
// Thread Safety:
//
//	A Handle is owned by exactly one connection and is not safe for
//	concurrent use. Only the Broken flag may be queried concurrently.
package base
