package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/redic/cmd/kv"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "redic",
		Short: "redis connection client",
		Long: fmt.Sprintf(`redic (v%s)

A synchronous Redis client connection core written in Go: TCP and
unix-socket transports, pipelined command send/receive, and explicit
reconnect handling.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of redic",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("redic v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
