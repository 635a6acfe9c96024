package resp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ValentinKolb/redic/redis/errs"
)

// Protocol type bytes as they appear on the wire
const (
	statusPrefix  = '+'
	errorPrefix   = '-'
	integerPrefix = ':'
	bulkPrefix    = '$'
	arrayPrefix   = '*'
)

// Parse reads exactly one reply from rd, blocking until the reply is
// complete. Read failures are returned unwrapped so the caller can
// distinguish deadline expiry from other transport errors; malformed
// protocol data is returned as a protocol-kind error.
func Parse(rd *bufio.Reader) (*Reply, error) {
	prefix, err := rd.ReadByte()
	if err != nil {
		return nil, err
	}

	switch prefix {
	case statusPrefix:
		line, err := readLine(rd)
		if err != nil {
			return nil, err
		}
		return &Reply{Kind: ReplyStatus, Str: line}, nil

	case errorPrefix:
		line, err := readLine(rd)
		if err != nil {
			return nil, err
		}
		return &Reply{Kind: ReplyError, Str: line}, nil

	case integerPrefix:
		line, err := readLine(rd)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(string(line), 10, 64)
		if err != nil {
			return nil, protocolErr("invalid integer reply %q", line)
		}
		return &Reply{Kind: ReplyInteger, Int: n}, nil

	case bulkPrefix:
		return parseBulk(rd)

	case arrayPrefix:
		return parseArray(rd)

	default:
		return nil, protocolErr("unknown reply type byte %q", prefix)
	}
}

// parseBulk reads a length-prefixed byte string, or nil for $-1
func parseBulk(rd *bufio.Reader) (*Reply, error) {
	length, err := readLength(rd)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return &Reply{Kind: ReplyNil}, nil
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return nil, err
	}
	if err := expectCRLF(rd); err != nil {
		return nil, err
	}
	return &Reply{Kind: ReplyBulk, Str: buf}, nil
}

// parseArray reads a count-prefixed sequence of nested replies, or nil
// for *-1
func parseArray(rd *bufio.Reader) (*Reply, error) {
	count, err := readLength(rd)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return &Reply{Kind: ReplyNil}, nil
	}

	elems := make([]*Reply, count)
	for i := range elems {
		elem, err := Parse(rd)
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}
	return &Reply{Kind: ReplyArray, Elems: elems}, nil
}

// readLine reads up to the next CRLF and returns the line without it
func readLine(rd *bufio.Reader) ([]byte, error) {
	line, err := rd.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	if len(line) < 2 || line[len(line)-2] != '\r' {
		return nil, protocolErr("malformed line %q, missing CRLF terminator", line)
	}
	return line[:len(line)-2], nil
}

// readLength reads a decimal length line (bulk/array prefix payload)
func readLength(rd *bufio.Reader) (int, error) {
	line, err := readLine(rd)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(string(line))
	if err != nil {
		return 0, protocolErr("invalid length %q", line)
	}
	return n, nil
}

// expectCRLF consumes the terminator following a bulk payload
func expectCRLF(rd *bufio.Reader) error {
	cr, err := rd.ReadByte()
	if err != nil {
		return err
	}
	lf, err := rd.ReadByte()
	if err != nil {
		return err
	}
	if cr != '\r' || lf != '\n' {
		return protocolErr("malformed bulk terminator %q", string([]byte{cr, lf}))
	}
	return nil
}

func protocolErr(format string, args ...interface{}) error {
	return errs.New(errs.KindProtocol, "recv", fmt.Sprintf(format, args...))
}
