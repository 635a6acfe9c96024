package common

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Connection type
// --------------------------------------------------------------------------

// ConnectionType selects the transport medium for a connection
type ConnectionType string

const (
	ConnectionTypeTCP  ConnectionType = "tcp"
	ConnectionTypeUnix ConnectionType = "unix"
)

// --------------------------------------------------------------------------
// Connection options struct
// --------------------------------------------------------------------------

// ConnectionOptions holds all parameters needed to establish and configure
// a single connection to a Redis server. The struct is treated as immutable
// once a connection has been built from it: reconnect re-reads the stored
// copy, it never mutates it.
//
// Exactly one of {Host+Port, Path} is meaningful, selected by Type.
type ConnectionOptions struct {
	// Transport medium (tcp or unix)
	Type ConnectionType

	// TCP endpoint
	Host string
	Port int

	// Unix domain socket path
	Path string

	// ConnectTimeout bounds the initial dial. Zero or negative means
	// block indefinitely.
	ConnectTimeout time.Duration

	// SocketTimeout bounds every read/write on the live connection.
	// Zero or negative means block indefinitely.
	SocketTimeout time.Duration

	// KeepAlive enables OS-level TCP keep-alive probes
	KeepAlive bool

	// Password is sent via AUTH during connection setup if non-empty
	Password string

	// DB is the logical database index, selected via SELECT if non-zero
	DB int
}

// DefaultOptions returns options for an unauthenticated connection to a
// Redis server on localhost
func DefaultOptions() ConnectionOptions {
	return ConnectionOptions{
		Type: ConnectionTypeTCP,
		Host: "localhost",
		Port: 6379,
	}
}

// Endpoint returns the dial target for the configured transport medium
func (o *ConnectionOptions) Endpoint() string {
	switch o.Type {
	case ConnectionTypeUnix:
		return o.Path
	default:
		return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
	}
}

// Validate checks that the options describe a dialable endpoint
func (o *ConnectionOptions) Validate() error {
	switch o.Type {
	case ConnectionTypeTCP:
		if o.Host == "" {
			return fmt.Errorf("no host provided for tcp connection")
		}
		if o.Port <= 0 || o.Port > 65535 {
			return fmt.Errorf("invalid port %d for tcp connection", o.Port)
		}
	case ConnectionTypeUnix:
		if o.Path == "" {
			return fmt.Errorf("no socket path provided for unix connection")
		}
	default:
		return fmt.Errorf("unknown connection type %q", o.Type)
	}
	return nil
}

// String returns a formatted string representation of the options
func (o *ConnectionOptions) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Connection")
	addField("Type", string(o.Type))
	addField("Endpoint", o.Endpoint())
	addField("Connect Timeout", o.ConnectTimeout.String())
	addField("Socket Timeout", o.SocketTimeout.String())
	addField("Keep Alive", strconv.FormatBool(o.KeepAlive))

	addSection("Session")
	password := "(none)"
	if o.Password != "" {
		password = "********"
	}
	addField("Password", password)
	addField("Database", strconv.Itoa(o.DB))

	return sb.String()
}
