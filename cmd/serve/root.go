package serve

import (
	"fmt"
	"strconv"
	"strings"

	cmdUtil "github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/ValentinKolb/dWeet/rpc/common"
	"github.com/ValentinKolb/dWeet/rpc/serializer"
	"github.com/ValentinKolb/dWeet/rpc/server"
	"github.com/ValentinKolb/dWeet/rpc/transport"
	"github.com/ValentinKolb/dWeet/rpc/transport/http"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the dWeet server",
		Long:    `Start the dWeet server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is DWEET_<flag> (e.g. DWEET_LOG_LEVEL=debug)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(initConfig)

	// add flags
	key := "shards"
	ServeCmd.PersistentFlags().String(key, "100", cmdUtil.WrapString("Comma-separated list of shard ids to serve. Every shard is an independent social store"))

	key = "endpoint"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0:8080", cmdUtil.WrapString("The address on which the API will listen (e.g. localhost:8080)"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "stats-interval"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("Seconds between two request statistics log lines, 0 disables them"))

	key = "metrics"
	ServeCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Expose prometheus metrics at /metrics"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	shards, err := parseShards(viper.GetString("shards"))
	if err != nil {
		return err
	}

	// read the configuration from the command line flags and environment variables
	serveCmdConfig.Shards = shards
	serveCmdConfig.Endpoint = viper.GetString("endpoint")
	serveCmdConfig.LogLevel = viper.GetString("log-level")
	serveCmdConfig.StatsInterval = viper.GetInt("stats-interval")
	serveCmdConfig.Metrics = viper.GetBool("metrics")

	if serveCmdConfig.StatsInterval < 0 {
		return fmt.Errorf("stats-interval must not be negative")
	}
	if _, err := common.ParseLogLevel(serveCmdConfig.LogLevel); err != nil {
		return err
	}

	return nil
}

// parseShards parses a comma-separated list of shard ids
func parseShards(shardsConfig string) ([]common.ServerShard, error) {
	shards := []common.ServerShard{}
	seen := map[uint64]bool{}
	for _, shardConfig := range strings.Split(shardsConfig, ",") {
		shardID, err := strconv.ParseUint(strings.TrimSpace(shardConfig), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid shard ID %q: %w", shardConfig, err)
		}
		if seen[shardID] {
			return nil, fmt.Errorf("shard %d is listed twice", shardID)
		}
		seen[shardID] = true
		shards = append(shards, common.ServerShard{ShardID: shardID})
	}
	return shards, nil
}

// run starts the dWeet server
func run(_ *cobra.Command, _ []string) error {

	// parse the serializer
	var s serializer.IRPCSerializer
	switch viper.GetString("serializer") {
	case "json":
		s = serializer.NewJSONSerializer()
	case "gob":
		s = serializer.NewGOBSerializer()
	default:
		return fmt.Errorf("invalid serializer %s", viper.GetString("serializer"))
	}

	// Parse the transport
	var t transport.IRPCServerTransport
	switch viper.GetString("transport") {
	case "http":
		t = http.NewHttpServerTransport()
	default:
		return fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}

	serv := server.NewRPCServer(
		*serveCmdConfig,
		t,
		s,
	)

	return serv.Serve()
}

// initConfig reads in serveCmdConfig file and ENV variables if set.
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("dweet")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}
