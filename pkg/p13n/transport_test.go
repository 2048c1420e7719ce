package p13n

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestIsSensitiveHeader(t *testing.T) {
	for _, name := range []string{"Authorization", "authorization", "Cookie", "X-Csrf-Token"} {
		if !isSensitiveHeader(name) {
			t.Errorf("expected %q to be sensitive", name)
		}
	}
	for _, name := range []string{"Accept", "User-Agent", "Origin"} {
		if isSensitiveHeader(name) {
			t.Errorf("expected %q not to be sensitive", name)
		}
	}
}

func TestRedactedHeaders(t *testing.T) {
	hdr := make(http.Header)
	hdr.Set("Authorization", "Bearer secret")
	hdr.Set("Accept", "*/*")

	out := redactedHeaders(hdr)
	if out["Authorization"] != "[REDACTED]" {
		t.Errorf("expected authorization redacted, got %q", out["Authorization"])
	}
	if out["Accept"] != "*/*" {
		t.Errorf("expected accept kept, got %q", out["Accept"])
	}
}

func TestDebugTransport_NeverLogsSecrets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	c, err := NewClient(testCreds(), &ClientOpts{BaseURL: srv.URL, Logger: &logger})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := c.CurrentInterests(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logged := buf.String()
	if logged == "" {
		t.Fatal("expected debug output")
	}
	for _, secret := range []string{"AAAAtestbearer", "csrf123", "auth456"} {
		if strings.Contains(logged, secret) {
			t.Errorf("secret %q leaked into logs", secret)
		}
	}
	if !strings.Contains(logged, "request done") {
		t.Error("expected a 'request done' event")
	}
}
