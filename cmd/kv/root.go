package kv

import (
	"github.com/ValentinKolb/redic/cmd/util"
	"github.com/ValentinKolb/redic/redis/common"
	"github.com/ValentinKolb/redic/redis/conn"
	"github.com/spf13/cobra"
)

var (
	connection *conn.Connection

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:                "kv",
		Short:              "Perform key-value store operations over one connection",
		PersistentPreRunE:  setupConnection,
		PersistentPostRunE: teardownConnection,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the KV command
	util.SetupClientFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(pingCmd)
	KeyValueCommands.AddCommand(setCmd)
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(delCmd)
	KeyValueCommands.AddCommand(doCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupConnection builds the single connection all subcommands use
func setupConnection(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	common.InitLoggers(util.GetLogLevel())

	c, err := conn.New(util.GetClientOptions())
	if err != nil {
		return err
	}
	connection = c
	return nil
}

// teardownConnection releases the connection after the subcommand ran
func teardownConnection(cmd *cobra.Command, _ []string) error {
	if connection != nil {
		return connection.Close()
	}
	return nil
}
