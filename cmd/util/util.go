package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/ValentinKolb/dWeet/rpc/client"
	"github.com/ValentinKolb/dWeet/rpc/common"
	"github.com/ValentinKolb/dWeet/rpc/serializer"
	"github.com/ValentinKolb/dWeet/rpc/transport"
	"github.com/ValentinKolb/dWeet/rpc/transport/http"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// DateLayout is the short date format accepted by all date arguments
	DateLayout = "2006-01-02"
)

var Logger = logger.GetLogger("cmd")

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

// --------------------------------------------------------------------------
// Client Setup
// --------------------------------------------------------------------------

// SetupRPCClientFlags adds common RPC connection flags to a command
func SetupRPCClientFlags(cmd *cobra.Command) {
	key := "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The timeout in seconds of the client"))

	key = "transport-endpoints"
	cmd.PersistentFlags().String(key, "localhost:8080", WrapString("The address of the dWeet server. Multiple endpoints can be specified as a comma-separated list, they are tried in order"))

	key = "transport-conn-per-endpoint"
	cmd.PersistentFlags().Int(key, 1, WrapString("Idle connections kept per endpoint"))

	key = "transport-retries"
	cmd.PersistentFlags().Int(key, 3, WrapString("How many times to retry the request"))

	key = "shard"
	cmd.PersistentFlags().Int(key, 100, WrapString("ID of the shard to connect to"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("dweet")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() *common.ClientConfig {
	return &common.ClientConfig{
		TimeoutSecond:          viper.GetInt("timeout"),
		RetryCount:             viper.GetInt("transport-retries"),
		Endpoints:              strings.Split(viper.GetString("transport-endpoints"), ","),
		ConnectionsPerEndpoint: viper.GetInt("transport-conn-per-endpoint"),
	}
}

// GetSerializer creates a serializer based on configuration
func GetSerializer() (serializer.IRPCSerializer, error) {
	switch viper.GetString("serializer") {
	case "json":
		return serializer.NewJSONSerializer(), nil
	case "gob":
		return serializer.NewGOBSerializer(), nil
	default:
		return nil, fmt.Errorf("invalid serializer %s", viper.GetString("serializer"))
	}
}

// GetTransport creates transport based on configuration
func GetTransport() (transport.IRPCClientTransport, error) {
	switch viper.GetString("transport") {
	case "http":
		return http.NewHttpClientTransport(), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}
}

// GetShardID retrieves the configured shard ID
func GetShardID() uint64 {
	return uint64(viper.GetInt("shard"))
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// NewRPCStore binds the flags of cmd and connects a store client with the
// resulting configuration
func NewRPCStore(cmd *cobra.Command) (store.ISocialStore, error) {
	if err := BindCommandFlags(cmd); err != nil {
		return nil, err
	}

	// Get client configuration components
	config := GetClientConfig()
	shardId := GetShardID()

	// Get serializer and transport
	s, err := GetSerializer()
	if err != nil {
		return nil, err
	}
	t, err := GetTransport()
	if err != nil {
		return nil, err
	}

	Logger.Debugf("connecting to shard %d: %s", shardId, config.String())
	return client.NewRPCStore(shardId, *config, t, s)
}

// --------------------------------------------------------------------------
// Argument Parsing
// --------------------------------------------------------------------------

// ParseID parses a user or weet id argument
func ParseID(name, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return id, nil
}

// ParseDate parses a date argument. Both the short form 2006-01-02 (midnight
// UTC) and RFC 3339 timestamps are accepted.
func ParseDate(arg string) (time.Time, error) {
	if date, err := time.Parse(DateLayout, arg); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s or RFC 3339)", arg, DateLayout)
	}
	return date, nil
}

// DateOrNow parses the optional date argument at index i, missing dates
// default to the current time
func DateOrNow(args []string, i int) (time.Time, error) {
	if len(args) <= i {
		return time.Now().UTC(), nil
	}
	return ParseDate(args[i])
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

// PrintList prints one element per line followed by the number of elements
func PrintList[T any](items []T) {
	for _, item := range items {
		fmt.Println(item)
	}
	fmt.Printf("(%d results)\n", len(items))
}

// PrintFound prints value or a not found message
func PrintFound[T any](value T, found bool, what string) {
	if !found {
		fmt.Printf("%s not found\n", what)
		return
	}
	fmt.Println(value)
}
