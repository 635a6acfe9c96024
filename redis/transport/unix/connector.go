package unix

import (
	"net"
	"time"

	"github.com/ValentinKolb/redic/redis/common"
	"github.com/ValentinKolb/redic/redis/transport/base"
)

// dialer implements the base.IDialer interface for Unix sockets
type dialer struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IDialer)
// --------------------------------------------------------------------------

func (d *dialer) GetName() string {
	return "unix"
}

func (d *dialer) Dial(opts common.ConnectionOptions) (net.Conn, error) {
	if opts.ConnectTimeout > 0 {
		return net.DialTimeout("unix", opts.Endpoint(),
			opts.ConnectTimeout.Truncate(time.Microsecond))
	}
	return net.Dial("unix", opts.Endpoint())
}

func (d *dialer) UpgradeConnection(conn net.Conn, opts common.ConnectionOptions) error {
	// Keep-alive is a TCP concept, nothing to do on a local socket
	return nil
}

// --------------------------------------------------------------------------
// Connector Factory Method
// --------------------------------------------------------------------------

// NewConnector creates a Unix socket connector for the given options
func NewConnector(opts common.ConnectionOptions) base.IConnector {
	return base.NewConnector(&dialer{}, opts)
}
