package p13n

import (
	"net/http"
	"testing"
)

func TestHeadersUpdate(t *testing.T) {
	tests := []struct {
		name    string
		h       Headers
		wantLen int
	}{
		{"replaces existing", Headers{{USER_AGENT_KEY, "TestUA/12.3"}}, 1},
		{"appends missing", Headers{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.h.Update(USER_AGENT_KEY, DEF_USER_AGENT)
			i, ok := tt.h.Get(USER_AGENT_KEY)
			if !ok {
				t.Fatal("header not found after update")
			}
			if got := tt.h[i].Value; got != DEF_USER_AGENT {
				t.Errorf("expected %q, got %q", DEF_USER_AGENT, got)
			}
			if len(tt.h) != tt.wantLen {
				t.Errorf("expected %d headers, got %d", tt.wantLen, len(tt.h))
			}
		})
	}
}

func TestHeadersSet_AppliesAll(t *testing.T) {
	hdr := make(http.Header)
	sessionHeaders("tok").Set(hdr)

	if hdr.Get("x-csrf-token") != "tok" {
		t.Errorf("expected csrf header 'tok', got %q", hdr.Get("x-csrf-token"))
	}
	if hdr.Get("x-twitter-auth-type") != "OAuth2Session" {
		t.Errorf("unexpected auth type header %q", hdr.Get("x-twitter-auth-type"))
	}
	if len(hdr) != len(sessionHeaders("tok")) {
		t.Errorf("expected %d headers, got %d", len(sessionHeaders("tok")), len(hdr))
	}
}

func TestSessionHeaders_NoAuthorizationOrContentType(t *testing.T) {
	hdr := make(http.Header)
	sessionHeaders("tok").Set(hdr)

	if hdr.Get("Authorization") != "" {
		t.Error("authorization must come from the bearer transport, not the header table")
	}
	if hdr.Get("Content-Type") != "" {
		t.Error("content-type is set per request on writes only")
	}
}
