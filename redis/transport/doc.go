// Package transport turns immutable connection options into one live,
// configured transport handle. It provides a common connect flow that all
// transport media share, with pluggable dialers for the supported protocols.
//
// The package is organized into subpackages:
//
//   - base: The protocol-agnostic connector flow (timed or blocking dial,
//     socket timeout, keep-alive) and the Handle type - the exclusively
//     owned OS-level connection plus its read/write buffering state and
//     broken flag.
//
//   - tcp: Dialer for TCP connections, including keep-alive support.
//
//   - unix: Dialer for Unix domain socket connections.
//
// A connector does not validate connectivity beyond what the dial itself
// reports: a refused or unreachable endpoint yields a handle that is
// already marked broken, and the owning connection decides how to surface
// that. Only options that cannot produce a dial attempt at all make the
// connector fail without a handle.
package transport
