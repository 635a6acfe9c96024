package tcp

import (
	"net"
	"testing"
	"time"

	"github.com/ValentinKolb/redic/redis/common"
	"github.com/ValentinKolb/redic/redis/errs"
)

// listen opens a throwaway TCP listener and returns matching options
func listen(t *testing.T) (net.Listener, common.ConnectionOptions) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	addr := ln.Addr().(*net.TCPAddr)
	return ln, common.ConnectionOptions{
		Type: common.ConnectionTypeTCP,
		Host: "127.0.0.1",
		Port: addr.Port,
	}
}

func TestConnect(t *testing.T) {
	_, opts := listen(t)

	handle, err := NewConnector(opts).Connect()
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer handle.Close()

	if handle.Broken() {
		t.Errorf("expected a healthy handle, diagnostic: %s", handle.Diagnostic())
	}
	if handle.RemoteDescription() != opts.Endpoint() {
		t.Errorf("expected remote %s, got %s", opts.Endpoint(), handle.RemoteDescription())
	}
}

func TestConnectWithoutTimeout(t *testing.T) {
	// Zero and negative connect timeouts mean "no deadline", they must
	// not make the dial fail fast
	for _, timeout := range []time.Duration{0, -time.Second} {
		_, opts := listen(t)
		opts.ConnectTimeout = timeout

		handle, err := NewConnector(opts).Connect()
		if err != nil {
			t.Fatalf("timeout %v: connect failed: %v", timeout, err)
		}
		if handle.Broken() {
			t.Errorf("timeout %v: expected a healthy handle", timeout)
		}
		handle.Close()
	}
}

func TestConnectRefused(t *testing.T) {
	ln, opts := listen(t)
	ln.Close() // nothing listens on the port anymore

	handle, err := NewConnector(opts).Connect()
	if err != nil {
		t.Fatalf("a refused handshake must still produce a handle, got error: %v", err)
	}
	defer handle.Close()

	if !handle.Broken() {
		t.Fatalf("expected a broken handle for a refused connection")
	}
	if handle.Diagnostic() == "" {
		t.Errorf("expected a diagnostic on the broken handle")
	}
}

func TestConnectInvalidOptions(t *testing.T) {
	opts := common.ConnectionOptions{Type: common.ConnectionTypeTCP}

	handle, err := NewConnector(opts).Connect()
	if err == nil {
		handle.Close()
		t.Fatalf("expected unusable options to fail without a handle")
	}
	if handle != nil {
		t.Errorf("expected nil handle for allocation failure")
	}
	if !errs.IsKind(err, errs.KindAllocation) {
		t.Errorf("expected allocation kind, got %v", err)
	}
}

func TestConnectWithKeepAlive(t *testing.T) {
	_, opts := listen(t)
	opts.KeepAlive = true

	handle, err := NewConnector(opts).Connect()
	if err != nil {
		t.Fatalf("connect with keep-alive failed: %v", err)
	}
	defer handle.Close()

	if handle.Broken() {
		t.Errorf("expected a healthy handle, diagnostic: %s", handle.Diagnostic())
	}
}

func TestGetName(t *testing.T) {
	if name := NewConnector(common.DefaultOptions()).GetName(); name != "tcp" {
		t.Errorf("expected tcp, got %s", name)
	}
}
