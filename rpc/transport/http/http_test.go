package http

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ValentinKolb/dWeet/rpc/common"
)

// newTestServer starts a server transport answering with "<shard>:<body>"
func newTestServer(t *testing.T, config common.ServerConfig) *httptest.Server {
	t.Helper()
	st := &httpServerTransport{config: config}
	st.RegisterHandler(func(shardId uint64, req []byte) []byte {
		return []byte(fmt.Sprintf("%d:%s", shardId, req))
	})
	server := httptest.NewServer(st.newMux())
	t.Cleanup(server.Close)
	return server
}

func TestSendReceive(t *testing.T) {
	server := newTestServer(t, common.ServerConfig{})

	client := NewHttpClientTransport()
	if err := client.Connect(common.ClientConfig{Endpoints: []string{server.URL}, TimeoutSecond: 5, RetryCount: 1}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	resp, err := client.Send(7, []byte("hello"))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if string(resp) != "7:hello" {
		t.Errorf("expected 7:hello, got %q", resp)
	}
}

func TestRetryNextEndpoint(t *testing.T) {
	server := newTestServer(t, common.ServerConfig{})

	// the first request goes to the second endpoint, which refuses connections
	client := NewHttpClientTransport()
	err := client.Connect(common.ClientConfig{
		Endpoints:     []string{server.URL, "http://127.0.0.1:1"},
		TimeoutSecond: 5,
		RetryCount:    2,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	resp, err := client.Send(1, []byte("retry"))
	if err != nil {
		t.Fatalf("expected the retry to reach the healthy endpoint, got %v", err)
	}
	if string(resp) != "1:retry" {
		t.Errorf("expected 1:retry, got %q", resp)
	}
}

func TestInvalidShard(t *testing.T) {
	server := newTestServer(t, common.ServerConfig{})

	resp, err := http.Post(server.URL+"/not-a-number", "application/octet-stream", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	withMetrics := newTestServer(t, common.ServerConfig{Metrics: true})
	resp, err := http.Get(withMetrics.URL + "/metrics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "go_goroutines") {
		t.Errorf("expected prometheus output, got %d: %.100s", resp.StatusCode, body)
	}

	withoutMetrics := newTestServer(t, common.ServerConfig{})
	resp, err = http.Get(withoutMetrics.URL + "/metrics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Error("expected /metrics to be disabled")
	}
}

func TestSendNotConnected(t *testing.T) {
	client := NewHttpClientTransport()
	if _, err := client.Send(1, nil); err == nil {
		t.Error("expected an error for an unconnected transport")
	}
	if err := client.Connect(common.ClientConfig{}); err == nil {
		t.Error("expected an error without endpoints")
	}
}

func TestEndpointWithoutScheme(t *testing.T) {
	server := newTestServer(t, common.ServerConfig{})

	client := NewHttpClientTransport()
	endpoint := strings.TrimPrefix(server.URL, "http://")
	if err := client.Connect(common.ClientConfig{Endpoints: []string{endpoint}, TimeoutSecond: 5}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	resp, err := client.Send(3, []byte("plain"))
	if err != nil || string(resp) != "3:plain" {
		t.Errorf("expected 3:plain, got (%q, %v)", resp, err)
	}
}
