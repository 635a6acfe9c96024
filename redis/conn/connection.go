package conn

import (
	"errors"
	"net"
	"os"
	"time"

	"github.com/ValentinKolb/redic/redis/common"
	"github.com/ValentinKolb/redic/redis/errs"
	"github.com/ValentinKolb/redic/redis/resp"
	"github.com/ValentinKolb/redic/redis/transport/base"
	"github.com/ValentinKolb/redic/redis/transport/tcp"
	"github.com/ValentinKolb/redic/redis/transport/unix"
	"github.com/lni/dragonboat/v4/logger"
)

var Logger = logger.GetLogger("redis/conn")

// Connection owns one transport handle plus a copy of the options it was
// built from (kept for reconnect) and the timestamp of its last I/O
// activity. See the package documentation for the usage contract.
type Connection struct {
	id         uint64
	handle     *base.Handle
	opts       common.ConnectionOptions
	lastActive time.Time
}

// New establishes a connection, configures the socket, and runs the
// session setup (AUTH, SELECT). On any failure no Connection is returned:
// an allocation-, connection- or configuration-kind error describes what
// went wrong during transport construction, a reply-kind error means the
// server rejected AUTH or SELECT.
func New(opts common.ConnectionOptions) (*Connection, error) {
	connector, err := newConnector(opts)
	if err != nil {
		return nil, err
	}

	handle, err := connector.Connect()
	if err != nil {
		metricConnectFailures.Inc()
		return nil, err
	}

	// The handshake may have produced a dead socket; surface that as a
	// connection-class failure distinct from the nil-handle case above
	if handle.Broken() {
		diag := handle.Diagnostic()
		handle.Close()
		metricConnectFailures.Inc()
		return nil, errs.New(errs.KindConnection, "connect",
			"failed to connect to redis: "+diag)
	}

	c := &Connection{
		handle:     handle,
		opts:       opts,
		lastActive: time.Now(),
	}

	if err := c.setOptions(); err != nil {
		c.handle.Close()
		metricConnectFailures.Inc()
		return nil, err
	}

	metricConnects.Inc()
	register(c)
	Logger.Debugf("connected to %s", c.RemoteDescription())
	return c, nil
}

// newConnector dispatches on the transport kind
func newConnector(opts common.ConnectionOptions) (base.IConnector, error) {
	switch opts.Type {
	case common.ConnectionTypeTCP:
		return tcp.NewConnector(opts), nil
	case common.ConnectionTypeUnix:
		return unix.NewConnector(opts), nil
	default:
		return nil, errs.New(errs.KindAllocation, "connect",
			"unknown connection type "+string(opts.Type))
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see IConnection)
// --------------------------------------------------------------------------

func (c *Connection) Send(args *resp.CmdArgs) error {
	return c.SendArgv(args.Args()...)
}

func (c *Connection) SendArgv(argv ...[]byte) error {
	if c.handle == nil {
		return errs.New(errs.KindConnection, "send", "connection is closed")
	}

	buf := resp.EncodeCommand(nil, argv)
	if err := c.handle.Append(buf); err != nil {
		metricSendErrors.Inc()
		return errs.Wrap(errs.KindProtocol, "send", "failed to send command", err)
	}

	c.lastActive = time.Now()
	metricCommands.Inc()
	return nil
}

func (c *Connection) Recv() (*resp.Reply, error) {
	if c.handle == nil {
		return nil, errs.New(errs.KindConnection, "recv", "connection is closed")
	}

	// Pending pipelined commands reach the wire here
	if err := c.handle.Flush(); err != nil {
		metricRecvErrors.Inc()
		return nil, errs.Wrap(transportKind(err), "recv", "failed to get reply", err)
	}

	if err := c.handle.ArmReadDeadline(); err != nil {
		c.handle.Fail(err)
		metricRecvErrors.Inc()
		return nil, errs.Wrap(errs.KindProtocol, "recv", "failed to get reply", err)
	}

	reply, err := resp.Parse(c.handle.Reader())
	if err != nil {
		c.handle.Fail(err)
		metricRecvErrors.Inc()
		return nil, errs.Wrap(transportKind(err), "recv", "failed to get reply", err)
	}

	c.lastActive = time.Now()

	// A well-formed error reply is a command failure, not a transport
	// failure: the connection stays usable
	if reply.IsError() {
		metricReplyErrors.Inc()
		return nil, errs.New(errs.KindReply, "recv", string(reply.Str))
	}

	metricReplies.Inc()
	return reply, nil
}

func (c *Connection) Broken() bool {
	return c.handle != nil && c.handle.Broken()
}

func (c *Connection) Reconnect() error {
	// Build the replacement first; if that fails the receiver keeps its
	// current state, broken or not
	fresh, err := New(c.opts)
	if err != nil {
		return err
	}

	// All-or-nothing swap: the temporary ends up holding the discarded
	// state and releases it
	c.handle, fresh.handle = fresh.handle, c.handle
	c.lastActive, fresh.lastActive = fresh.lastActive, c.lastActive
	c.opts, fresh.opts = fresh.opts, c.opts

	fresh.Close()
	metricReconnects.Inc()
	Logger.Debugf("reconnected to %s", c.RemoteDescription())
	return nil
}

func (c *Connection) LastActive() time.Time {
	return c.lastActive
}

func (c *Connection) Close() error {
	unregister(c)
	if c.handle == nil {
		return nil
	}
	err := c.handle.Close()
	c.handle = nil
	return err
}

// --------------------------------------------------------------------------
// Additional accessors
// --------------------------------------------------------------------------

// Options returns a copy of the options the connection was built from
func (c *Connection) Options() common.ConnectionOptions {
	return c.opts
}

// RemoteDescription renders the connected peer, e.g. "127.0.0.1:6379" or
// a socket path
func (c *Connection) RemoteDescription() string {
	if c.handle == nil {
		return "(closed)"
	}
	return c.handle.RemoteDescription()
}

// --------------------------------------------------------------------------
// Session setup
// --------------------------------------------------------------------------

// setOptions establishes the server-side session invariants every later
// command depends on: authenticated, and on the configured database
func (c *Connection) setOptions() error {
	if err := c.auth(); err != nil {
		return err
	}
	return c.selectDB()
}

// auth sends AUTH and requires a plain OK
func (c *Connection) auth() error {
	if c.opts.Password == "" {
		return nil
	}

	if err := c.SendArgv([]byte("AUTH"), []byte(c.opts.Password)); err != nil {
		return err
	}
	reply, err := c.Recv()
	if err != nil {
		return err
	}
	return resp.ExpectOKStatus(reply)
}

// selectDB sends SELECT and requires a plain OK
func (c *Connection) selectDB() error {
	if c.opts.DB == 0 {
		return nil
	}

	args := new(resp.CmdArgs)
	args.AddString("SELECT").AddInt(int64(c.opts.DB))
	if err := c.Send(args); err != nil {
		return err
	}
	reply, err := c.Recv()
	if err != nil {
		return err
	}
	return resp.ExpectOKStatus(reply)
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// transportKind classifies a transport-level failure: deadline expiry is
// reported as a timeout, everything else as a protocol failure
func transportKind(err error) errs.Kind {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return errs.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errs.KindTimeout
	}
	return errs.KindProtocol
}
