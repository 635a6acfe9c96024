package kv

import (
	"fmt"

	"github.com/ValentinKolb/redic/redis/errs"
	"github.com/ValentinKolb/redic/redis/resp"
	"github.com/spf13/cobra"
)

var (
	pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Checks the connection to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := roundTrip("PING")
			if err != nil {
				return err
			}
			fmt.Println(reply.Display())
			return nil
		},
	}
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := roundTrip("SET", args[0], args[1]); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := roundTrip("GET", args[0])
			if err != nil {
				return err
			}
			fmt.Printf("key=%s, found=%v, resp=%s\n", args[0], !reply.IsNil(), reply.Display())
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]...",
		Short: "Deletes one or more keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := roundTrip(append([]string{"DEL"}, args...)...)
			if err != nil {
				return err
			}
			fmt.Printf("deleted %s key(s)\n", reply.Display())
			return nil
		},
	}
	doCmd = &cobra.Command{
		Use:   "do [command] [arg]...",
		Short: "Sends a raw command and prints the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := roundTrip(args...)
			if err != nil {
				// A server-side error is still a reply worth printing
				if errs.IsReply(err) {
					fmt.Printf("(error) %v\n", err)
					return nil
				}
				return err
			}
			fmt.Println(reply.Display())
			return nil
		},
	}
)

// roundTrip sends one command and receives its reply
func roundTrip(parts ...string) (*resp.Reply, error) {
	args := new(resp.CmdArgs)
	for _, part := range parts {
		args.AddString(part)
	}
	if err := connection.Send(args); err != nil {
		return nil, err
	}
	return connection.Recv()
}
