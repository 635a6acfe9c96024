// Package resp implements the Redis wire protocol used by the connection
// core: encoding a command's argument vector into the multi-bulk request
// format, and parsing one reply at a time off a buffered byte stream.
//
// The codec is deliberately value-agnostic. A command is an ordered vector
// of byte strings; a reply is an opaque tree of status/error/integer/bulk/
// array nodes. Interpreting argument semantics or converting replies into
// typed values is the job of the surrounding client library.
package resp
