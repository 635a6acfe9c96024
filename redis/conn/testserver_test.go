package conn

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/ValentinKolb/redic/redis/common"
	"github.com/ValentinKolb/redic/redis/resp"
)

// serverConfig scripts the behavior of the in-test redis server
type serverConfig struct {
	// password, when non-empty, must be presented via AUTH
	password string
	// silent makes the server read commands but never reply
	silent bool
	// closeOnCommand makes the server drop the connection upon
	// receiving the named command, simulating a peer reset
	closeOnCommand string
}

// testServer is a minimal scripted redis server: it decodes multi-bulk
// commands with the resp package and answers a fixed command set
type testServer struct {
	t   *testing.T
	ln  net.Listener
	cfg serverConfig

	mu       sync.Mutex
	commands [][]string
}

// startServer runs a test server on a loopback TCP port
func startServer(t *testing.T, cfg serverConfig) *testServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	s := &testServer{t: t, ln: ln, cfg: cfg}
	go s.serve()
	t.Cleanup(s.stop)
	return s
}

// options returns connection options pointing at the server
func (s *testServer) options() common.ConnectionOptions {
	addr := s.ln.Addr().(*net.TCPAddr)
	return common.ConnectionOptions{
		Type: common.ConnectionTypeTCP,
		Host: "127.0.0.1",
		Port: addr.Port,
	}
}

// commandsSeen returns every command received so far, in arrival order
func (s *testServer) commandsSeen() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.commands))
	copy(out, s.commands)
	return out
}

func (s *testServer) stop() {
	s.ln.Close()
}

func (s *testServer) serve() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *testServer) handle(conn net.Conn) {
	defer conn.Close()

	rd := bufio.NewReader(conn)
	counter := int64(0)

	for {
		req, err := resp.Parse(rd)
		if err != nil {
			return
		}

		argv := flatten(req)
		if len(argv) == 0 {
			return
		}

		s.mu.Lock()
		s.commands = append(s.commands, argv)
		s.mu.Unlock()

		name := strings.ToUpper(argv[0])

		if s.cfg.closeOnCommand != "" && name == s.cfg.closeOnCommand {
			return
		}
		if s.cfg.silent {
			continue
		}

		switch name {
		case "AUTH":
			switch {
			case s.cfg.password == "":
				fmt.Fprintf(conn, "-ERR Client sent AUTH, but no password is set\r\n")
			case len(argv) == 2 && argv[1] == s.cfg.password:
				fmt.Fprintf(conn, "+OK\r\n")
			default:
				fmt.Fprintf(conn, "-ERR invalid password\r\n")
			}
		case "SELECT":
			n, err := strconv.Atoi(argv[1])
			if err != nil || n < 0 || n > 15 {
				fmt.Fprintf(conn, "-ERR DB index is out of range\r\n")
			} else {
				fmt.Fprintf(conn, "+OK\r\n")
			}
		case "PING":
			fmt.Fprintf(conn, "+PONG\r\n")
		case "ECHO":
			fmt.Fprintf(conn, "$%d\r\n%s\r\n", len(argv[1]), argv[1])
		case "INCR":
			counter++
			fmt.Fprintf(conn, ":%d\r\n", counter)
		case "KEYS":
			fmt.Fprintf(conn, "*2\r\n$3\r\nfoo\r\n$3\r\nbar\r\n")
		default:
			fmt.Fprintf(conn, "-ERR unknown command '%s'\r\n", argv[0])
		}
	}
}

// flatten converts a parsed multi-bulk request into its argument strings
func flatten(req *resp.Reply) []string {
	if req.Kind != resp.ReplyArray {
		return nil
	}
	argv := make([]string, 0, len(req.Elems))
	for _, elem := range req.Elems {
		argv = append(argv, string(elem.Str))
	}
	return argv
}
