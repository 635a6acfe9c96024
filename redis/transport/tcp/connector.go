package tcp

import (
	"net"
	"time"

	"github.com/ValentinKolb/redic/redis/common"
	"github.com/ValentinKolb/redic/redis/transport/base"
)

// keepAlivePeriod is the probe interval applied when keep-alive is enabled
const keepAlivePeriod = 15 * time.Second

// dialer implements the base.IDialer interface for TCP sockets
type dialer struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IDialer)
// --------------------------------------------------------------------------

func (d *dialer) GetName() string {
	return "tcp"
}

func (d *dialer) Dial(opts common.ConnectionOptions) (net.Conn, error) {
	if opts.ConnectTimeout > 0 {
		return net.DialTimeout("tcp", opts.Endpoint(),
			opts.ConnectTimeout.Truncate(time.Microsecond))
	}
	return net.Dial("tcp", opts.Endpoint())
}

func (d *dialer) UpgradeConnection(conn net.Conn, opts common.ConnectionOptions) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil // Not a TCP connection, nothing to upgrade
	}

	if err := tcpConn.SetKeepAlive(true); err != nil {
		return err
	}
	return tcpConn.SetKeepAlivePeriod(keepAlivePeriod)
}

// --------------------------------------------------------------------------
// Connector Factory Method
// --------------------------------------------------------------------------

// NewConnector creates a TCP connector for the given options
func NewConnector(opts common.ConnectionOptions) base.IConnector {
	return base.NewConnector(&dialer{}, opts)
}
