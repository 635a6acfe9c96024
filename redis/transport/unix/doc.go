// Package unix implements the Unix domain socket dialer for the connection
// core. It provides the concrete implementation of the base package's
// IDialer interface for local socket connections.
package unix
