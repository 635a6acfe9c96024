// Package redis provides the connection core of a synchronous Redis client:
// establishing a TCP or Unix-domain transport, configuring socket behavior,
// authenticating and selecting a logical database, and exposing a pipelined
// request/response protocol channel on top of the live connection.
//
// The package is organized into several subpackages:
//
//   - common: Connection options, logging setup and shared utilities used
//     across the connection core.
//
//   - errs: Structured error types distinguishing allocation, connection,
//     configuration, protocol, timeout and server-reply failures.
//
//   - resp: The wire protocol codec - multi-bulk command encoding and
//     streaming reply parsing (status, error, integer, bulk, array, nil).
//
//   - transport: Network transport abstractions with pluggable dialers
//     (TCP, Unix sockets) and the exclusively-owned transport handle.
//
//   - conn: The Connection itself - send/recv primitives, broken-state
//     tracking, reconnect, and the AUTH/SELECT session setup.
//
// Higher-level concerns (typed command API, reply conversion, pooling,
// pub/sub bookkeeping, cluster topology) consume this core through the
// conn.IConnection surface and are implemented elsewhere.
package redis
