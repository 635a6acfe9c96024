package util

import (
	"strings"
	"time"

	"github.com/ValentinKolb/redic/redis/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds the common connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "host"
	cmd.PersistentFlags().String(key, "localhost", WrapString("The host of the redis server"))

	key = "port"
	cmd.PersistentFlags().Int(key, 6379, WrapString("The port of the redis server"))

	key = "unix-socket"
	cmd.PersistentFlags().String(key, "", WrapString("Path to a unix domain socket - when set, takes precedence over host/port"))

	key = "connect-timeout"
	cmd.PersistentFlags().Duration(key, 5*time.Second, WrapString("How long to wait for the initial connect - zero or negative blocks indefinitely"))

	key = "socket-timeout"
	cmd.PersistentFlags().Duration(key, 5*time.Second, WrapString("How long to wait for a single read or write - zero or negative blocks indefinitely"))

	key = "keepalive"
	cmd.PersistentFlags().Bool(key, false, WrapString("Whether to enable TCP keep-alive probes on the connection"))

	key = "password"
	cmd.PersistentFlags().String(key, "", WrapString("Password sent via AUTH during connection setup"))

	key = "db"
	cmd.PersistentFlags().Int(key, 0, WrapString("Logical database index selected via SELECT during connection setup"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("Log level (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("redic")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientOptions reads the connection options from viper
func GetClientOptions() common.ConnectionOptions {
	opts := common.ConnectionOptions{
		Type:           common.ConnectionTypeTCP,
		Host:           viper.GetString("host"),
		Port:           viper.GetInt("port"),
		ConnectTimeout: viper.GetDuration("connect-timeout"),
		SocketTimeout:  viper.GetDuration("socket-timeout"),
		KeepAlive:      viper.GetBool("keepalive"),
		Password:       viper.GetString("password"),
		DB:             viper.GetInt("db"),
	}

	if path := viper.GetString("unix-socket"); path != "" {
		opts.Type = common.ConnectionTypeUnix
		opts.Path = path
	}

	return opts
}

// GetLogLevel retrieves the configured log level
func GetLogLevel() string {
	return viper.GetString("log-level")
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
