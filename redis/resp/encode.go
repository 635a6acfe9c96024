package resp

import "strconv"

// --------------------------------------------------------------------------
// Command argument builder
// --------------------------------------------------------------------------

// CmdArgs is an append-only builder for one command's argument vector.
//
// Add keeps a reference to the caller's byte slice rather than copying it,
// so the referenced data must stay unmodified until the command has been
// handed to Connection.Send (which copies it into the outbound buffer).
// AddString and AddInt store their own copies and carry no such constraint.
type CmdArgs struct {
	args [][]byte
}

// Add appends one argument by reference
func (a *CmdArgs) Add(arg []byte) *CmdArgs {
	a.args = append(a.args, arg)
	return a
}

// AddString appends one argument, copying the string's bytes
func (a *CmdArgs) AddString(arg string) *CmdArgs {
	return a.Add([]byte(arg))
}

// AddInt appends one argument formatted as a decimal integer
func (a *CmdArgs) AddInt(arg int64) *CmdArgs {
	return a.Add(strconv.AppendInt(nil, arg, 10))
}

// Len returns the number of arguments added so far
func (a *CmdArgs) Len() int {
	return len(a.args)
}

// Args returns the argument vector in insertion order
func (a *CmdArgs) Args() [][]byte {
	return a.args
}

// --------------------------------------------------------------------------
// Multi-bulk command encoding
// --------------------------------------------------------------------------

// EncodeCommand appends the multi-bulk request encoding of one command to
// dst and returns the extended buffer:
//
//	*<argc>\r\n$<len(arg0)>\r\n<arg0>\r\n...
//
// The encoding copies every argument, so the caller's slices are free for
// reuse once EncodeCommand returns.
func EncodeCommand(dst []byte, argv [][]byte) []byte {
	dst = append(dst, '*')
	dst = strconv.AppendInt(dst, int64(len(argv)), 10)
	dst = append(dst, '\r', '\n')

	for _, arg := range argv {
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(arg)), 10)
		dst = append(dst, '\r', '\n')
		dst = append(dst, arg...)
		dst = append(dst, '\r', '\n')
	}

	return dst
}
