package common

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		opts    ConnectionOptions
		wantErr bool
	}{
		"valid tcp": {
			opts: ConnectionOptions{Type: ConnectionTypeTCP, Host: "localhost", Port: 6379},
		},
		"valid unix": {
			opts: ConnectionOptions{Type: ConnectionTypeUnix, Path: "/tmp/redis.sock"},
		},
		"tcp without host": {
			opts:    ConnectionOptions{Type: ConnectionTypeTCP, Port: 6379},
			wantErr: true,
		},
		"tcp with invalid port": {
			opts:    ConnectionOptions{Type: ConnectionTypeTCP, Host: "localhost", Port: -1},
			wantErr: true,
		},
		"tcp with port overflow": {
			opts:    ConnectionOptions{Type: ConnectionTypeTCP, Host: "localhost", Port: 70000},
			wantErr: true,
		},
		"unix without path": {
			opts:    ConnectionOptions{Type: ConnectionTypeUnix},
			wantErr: true,
		},
		"unknown type": {
			opts:    ConnectionOptions{Type: "carrier-pigeon", Host: "localhost", Port: 6379},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEndpoint(t *testing.T) {
	tcp := ConnectionOptions{Type: ConnectionTypeTCP, Host: "10.0.0.1", Port: 6380}
	if got := tcp.Endpoint(); got != "10.0.0.1:6380" {
		t.Errorf("expected 10.0.0.1:6380, got %s", got)
	}

	unix := ConnectionOptions{Type: ConnectionTypeUnix, Path: "/var/run/redis.sock"}
	if got := unix.Endpoint(); got != "/var/run/redis.sock" {
		t.Errorf("expected socket path, got %s", got)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Errorf("default options must validate: %v", err)
	}
	if opts.Endpoint() != "localhost:6379" {
		t.Errorf("unexpected default endpoint %s", opts.Endpoint())
	}
	if opts.DB != 0 || opts.Password != "" {
		t.Errorf("defaults must not configure a session")
	}
}

func TestStringMasksPassword(t *testing.T) {
	opts := DefaultOptions()
	opts.Password = "hunter2"

	rendered := opts.String()
	if strings.Contains(rendered, "hunter2") {
		t.Errorf("options rendering must not leak the password:\n%s", rendered)
	}
	if !strings.Contains(rendered, "localhost:6379") {
		t.Errorf("options rendering should include the endpoint:\n%s", rendered)
	}
}
