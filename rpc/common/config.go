package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// RPC server configuration struct
// --------------------------------------------------------------------------

type ServerShard struct {
	// ShardID is the ID of the shard
	ShardID uint64
}

// ServerConfig holds all configuration parameters of a dWeet server.
type ServerConfig struct {
	// Shards served by this server, every shard is an independent store
	Shards []ServerShard

	// HTTP api settings
	Endpoint string

	// Logging configuration
	LogLevel string

	// StatsInterval is the number of seconds between two request statistics
	// log lines, 0 disables them
	StatsInterval int

	// Metrics enables the prometheus endpoint /metrics
	Metrics bool
}

// Validate checks the configuration for values the server can not start with
func (c *ServerConfig) Validate() error {
	if len(c.Shards) == 0 {
		return fmt.Errorf("no shards configured")
	}
	if c.StatsInterval < 0 {
		return fmt.Errorf("stats interval must not be negative, got %d", c.StatsInterval)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var p configPrinter

	// RPC settings
	p.section("RPC Server")
	p.field("Endpoint", c.Endpoint)
	p.field("Metrics", fmt.Sprintf("%t", c.Metrics))

	// Logging configuration
	p.section("Logging")
	p.field("Log Level", c.LogLevel)
	if c.StatsInterval > 0 {
		p.field("Stats Interval", fmt.Sprintf("%d sec", c.StatsInterval))
	} else {
		p.field("Stats Interval", "disabled")
	}

	// Shards
	p.section("Shards")
	for _, shard := range c.Shards {
		p.field(strconv.FormatUint(shard.ShardID, 10), "local store (llrb)")
	}

	return p.String()
}

// --------------------------------------------------------------------------
// RPC client configuration struct
// --------------------------------------------------------------------------

type ClientConfig struct {
	// Endpoints are used round-robin, a failed attempt moves to the next one
	Endpoints []string
	// TimeoutSecond limits a single attempt, 0 disables the timeout
	TimeoutSecond int
	// RetryCount is the number of attempts per request (at least one)
	RetryCount int
	// ConnectionsPerEndpoint is the number of idle connections kept per endpoint
	ConnectionsPerEndpoint int
}

// Validate checks the configuration for values a client can not connect with
func (c *ClientConfig) Validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("no endpoints configured")
	}
	for i, endpoint := range c.Endpoints {
		if strings.TrimSpace(endpoint) == "" {
			return fmt.Errorf("endpoint %d is empty", i)
		}
	}
	if c.TimeoutSecond < 0 || c.RetryCount < 0 || c.ConnectionsPerEndpoint < 0 {
		return fmt.Errorf("timeout, retry count and connections must not be negative")
	}
	return nil
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var p configPrinter

	// General Client Settings
	p.section("Client Configuration")
	p.field("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	p.field("Retry Count", strconv.Itoa(max(1, c.RetryCount)))
	p.field("Connections Per Endpoint", strconv.Itoa(max(1, c.ConnectionsPerEndpoint)))

	// Endpoints
	p.section("Endpoints")
	for i, endpoint := range c.Endpoints {
		p.field(strconv.Itoa(i), endpoint)
	}

	return p.String()
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// configPrinter formats configurations as aligned sections for the logs
type configPrinter struct {
	sb strings.Builder
}

func (p *configPrinter) section(title string) {
	p.sb.WriteString("\n")
	p.sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
}

func (p *configPrinter) field(name, value string) {
	p.sb.WriteString(fmt.Sprintf("  %-24s: %s\n", name, value))
}

func (p *configPrinter) String() string {
	return p.sb.String()
}
