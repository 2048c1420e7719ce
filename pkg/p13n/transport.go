package p13n

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// headerTransport applies the fixed session header set to every request
// before delegating to the underlying RoundTripper. The request is
// cloned first; RoundTrippers must not mutate the original.
type headerTransport struct {
	base    http.RoundTripper
	headers Headers
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	t.headers.Set(r.Header)
	return t.base.RoundTrip(r)
}

// debugTransport logs one event per exchange at debug level, with
// request headers attached. Values of sensitive headers are redacted.
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	evt := t.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dur("took", time.Since(start))
	if evt.Enabled() {
		evt = evt.Interface("headers", redactedHeaders(req.Header))
	}
	if err != nil {
		evt.Err(err).Msg("request failed")
		return nil, err
	}
	evt.Int("status", resp.StatusCode).Msg("request done")
	return resp, nil
}

var sensitiveHeaders = []string{
	"authorization",
	"cookie",
	"set-cookie",
	CSRF_TOKEN_KEY,
}

func isSensitiveHeader(name string) bool {
	lowerName := strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if lowerName == h {
			return true
		}
	}
	return false
}

func redactedHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for name, values := range header {
		if isSensitiveHeader(name) {
			out[name] = "[REDACTED]"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}
