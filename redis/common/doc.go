// Package common provides the core data structures and utilities shared
// across the connection core: the ConnectionOptions describing how a single
// connection is established and configured, and the logging setup used by
// all subpackages.
package common
