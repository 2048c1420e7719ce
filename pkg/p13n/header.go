package p13n

import "net/http"

const (
	USER_AGENT_KEY = "User-Agent"
	CSRF_TOKEN_KEY = "x-csrf-token"
)

const (
	DEF_ORIGIN     = "https://x.com"
	DEF_USER_AGENT = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/136.0.0.0 Safari/537.36"
)

// Header is one key-value pair of the session header table.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered header table.
type Headers []Header

// Get returns the position of key in the table, false when absent.
func (h Headers) Get(key string) (int, bool) {
	for i, entry := range h {
		if entry.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Update replaces the value stored under key, appending a new entry
// when the key is not in the table yet.
func (h *Headers) Update(key, value string) {
	if i, ok := h.Get(key); ok {
		(*h)[i].Value = value
		return
	}
	*h = append(*h, Header{key, value})
}

// Set writes every entry into header.
func (h Headers) Set(header http.Header) {
	for _, entry := range h {
		header.Set(entry.Key, entry.Value)
	}
}

// sessionHeaders is the fixed header set the platform web client sends
// with every personalization request. Requests missing the sec-fetch or
// x-twitter entries get rejected, so the whole table goes out on each
// call. Authorization is handled by the bearer transport and
// content-type is set per request on writes.
func sessionHeaders(csrfToken string) Headers {
	return Headers{
		{"accept", "*/*"},
		{"accept-language", "en-US,en;q=0.9"},
		{"origin", DEF_ORIGIN},
		{"referer", DEF_ORIGIN + "/"},
		{"sec-fetch-dest", "empty"},
		{"sec-fetch-mode", "cors"},
		{"sec-fetch-site", "same-site"},
		{USER_AGENT_KEY, DEF_USER_AGENT},
		{CSRF_TOKEN_KEY, csrfToken},
		{"x-twitter-active-user", "yes"},
		{"x-twitter-auth-type", "OAuth2Session"},
		{"x-twitter-client-language", "en"},
	}
}
