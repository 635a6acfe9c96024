package base

import (
	"net"

	"github.com/ValentinKolb/redic/redis/common"
	"github.com/ValentinKolb/redic/redis/errs"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("redis/transport")

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IDialer defines the interface for transport-specific connection operations
type IDialer interface {
	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string

	// Dial establishes a single connection for the given options. The dial
	// must honor opts.ConnectTimeout: a value greater than zero bounds the
	// handshake, anything else blocks until the OS gives up.
	Dial(opts common.ConnectionOptions) (net.Conn, error)

	// UpgradeConnection applies protocol-specific socket settings (such as
	// keep-alive) to an established connection
	UpgradeConnection(conn net.Conn, opts common.ConnectionOptions) error
}

// IConnector turns immutable connection options into one live, configured
// transport handle, or fails
type IConnector interface {
	// Connect performs the dial and socket configuration. A nil handle is
	// returned only when no handle could be produced at all; a failed
	// handshake yields a non-nil handle already marked broken, which the
	// caller must check.
	Connect() (*Handle, error)

	// GetName returns the name of the underlying transport type
	GetName() string
}

// -----------------------------------------------------------
// Connector implementation
// -----------------------------------------------------------

// connector implements the connect flow independent of the specific
// transport medium (unix, tcp, etc.)
type connector struct {
	dialer IDialer
	opts   common.ConnectionOptions
}

// NewConnector creates a connector for the given dialer and options
func NewConnector(dialer IDialer, opts common.ConnectionOptions) IConnector {
	return &connector{dialer: dialer, opts: opts}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see IConnector)
// --------------------------------------------------------------------------

func (c *connector) GetName() string {
	return c.dialer.GetName()
}

func (c *connector) Connect() (*Handle, error) {
	// Options that cannot produce a dial attempt allocate no handle
	if err := c.opts.Validate(); err != nil {
		return nil, errs.Wrap(errs.KindAllocation, "connect",
			"failed to allocate connection", err)
	}

	// Dial the endpoint. A failed handshake still produces a handle so
	// the owning connection can distinguish "no handle" from "dead handle"
	conn, err := c.dialer.Dial(c.opts)
	if err != nil {
		Logger.Debugf("dial %s %s failed: %v", c.dialer.GetName(), c.opts.Endpoint(), err)
		return NewBrokenHandle(err.Error()), nil
	}

	// Apply keep-alive before wrapping, while the raw conn is at hand
	if c.opts.KeepAlive {
		if err := c.dialer.UpgradeConnection(conn, c.opts); err != nil {
			conn.Close()
			return nil, errs.Wrap(errs.KindConfiguration, "connect",
				"failed to enable keep alive option", err)
		}
	}

	handle := NewHandle(conn, c.opts.SocketTimeout)

	// Apply the socket timeout once so a rejected setting surfaces here
	// rather than on the first send
	if c.opts.SocketTimeout > 0 {
		if err := handle.ArmReadDeadline(); err != nil {
			handle.Close()
			return nil, errs.Wrap(errs.KindConfiguration, "connect",
				"failed to set socket timeout", err)
		}
	}

	Logger.Debugf("connected to %s via %s", c.opts.Endpoint(), c.dialer.GetName())
	return handle, nil
}
