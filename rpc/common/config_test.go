package common

import (
	"strings"
	"testing"
)

func TestServerConfigValidate(t *testing.T) {
	valid := ServerConfig{Shards: []ServerShard{{ShardID: 1}}, LogLevel: "info"}

	tests := []struct {
		name    string
		modify  func(c *ServerConfig)
		wantErr bool
	}{
		{"valid", func(c *ServerConfig) {}, false},
		{"no shards", func(c *ServerConfig) { c.Shards = nil }, true},
		{"negative stats interval", func(c *ServerConfig) { c.StatsInterval = -1 }, true},
		{"unknown log level", func(c *ServerConfig) { c.LogLevel = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ClientConfig
		wantErr bool
	}{
		{"valid", ClientConfig{Endpoints: []string{"localhost:8080"}, TimeoutSecond: 5}, false},
		{"no endpoints", ClientConfig{}, true},
		{"empty endpoint", ClientConfig{Endpoints: []string{"localhost:8080", " "}}, true},
		{"negative retries", ClientConfig{Endpoints: []string{"localhost:8080"}, RetryCount: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	server := ServerConfig{Shards: []ServerShard{{ShardID: 100}}, Endpoint: "0.0.0.0:8080", LogLevel: "info"}
	out := server.String()
	for _, want := range []string{"RPC SERVER", "0.0.0.0:8080", "disabled", "100"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in server config output:\n%s", want, out)
		}
	}

	client := ClientConfig{Endpoints: []string{"a:1", "b:2"}}
	out = client.String()
	for _, want := range []string{"ENDPOINTS", "a:1", "b:2", "Retry Count"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in client config output:\n%s", want, out)
		}
	}
}
