package httpclient

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURLBlocksPrivateTargets(t *testing.T) {
	c := NewSaferClient(5 * time.Second)

	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{"localhost", "http://localhost:8080/v1", "localhost"},
		{"localhost subdomain", "http://api.localhost/v1", "localhost"},
		{"loopback IP", "http://127.0.0.1/v1", "private IP"},
		{"private IP", "http://192.168.1.10/v1", "private IP"},
		{"link-local metadata", "http://169.254.169.254/latest/meta-data", "private IP"},
		{"credential injection", "http://evil.com@10.0.0.1/", "@"},
		{"file scheme", "file:///etc/passwd", "scheme"},
		{"gopher scheme", "gopher://example.com/", "scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", tt.url, nil)
			require.NoError(t, err)
			_, err = c.Do(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsBlockedIP(t *testing.T) {
	blocked := []string{
		"127.0.0.1", "10.1.2.3", "172.16.0.1", "192.168.0.1",
		"169.254.169.254", "0.0.0.0", "224.0.0.1", "255.255.255.255",
		"::1", "fe80::1", "fc00::1", "fd12::1", "::",
	}
	for _, s := range blocked {
		assert.True(t, isBlockedIP(net.ParseIP(s)), "expected %s blocked", s)
	}

	public := []string{"8.8.8.8", "1.1.1.1", "104.18.2.115", "2606:4700::6812:273"}
	for _, s := range public {
		assert.False(t, isBlockedIP(net.ParseIP(s)), "expected %s allowed", s)
	}
}

func TestWrapClientAllowsLocalTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := WrapClient(srv.Client())
	req, err := http.NewRequest("GET", srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
