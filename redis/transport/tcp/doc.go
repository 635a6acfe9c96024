// Package tcp implements the TCP dialer for the connection core. It
// provides the concrete implementation of the base package's IDialer
// interface for TCP connections, including timed connects and OS-level
// keep-alive configuration.
package tcp
