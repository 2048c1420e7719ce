package p13n

import (
	"errors"
	"net/http"
	"net/url"

	"golang.org/x/net/proxy"
)

var (
	ErrEmptyProxyURL     = errors.New("proxy url is empty")
	ErrInvalidProxyURL   = errors.New("proxy url is invalid")
	ErrUnsupportedScheme = errors.New("proxy scheme must be http, https or socks5")
)

// ParseProxyURL validates a proxy address. Supported schemes are http,
// https and socks5; credentials may ride in the userinfo part.
func ParseProxyURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, ErrEmptyProxyURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidProxyURL
	}
	switch u.Scheme {
	case "http", "https", "socks5":
		return u, nil
	}
	return nil, ErrUnsupportedScheme
}

// newBaseTransport is the innermost transport of a session client. An
// empty proxyURL yields the default transport; socks5 uses a SOCKS
// dialer, http and https use CONNECT.
func newBaseTransport(proxyURL string) (http.RoundTripper, error) {
	if proxyURL == "" {
		return http.DefaultTransport, nil
	}
	u, err := ParseProxyURL(proxyURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "socks5" {
		return &http.Transport{Proxy: http.ProxyURL(u)}, nil
	}
	dialer, err := proxy.SOCKS5("tcp", u.Host, socksAuth(u.User), proxy.Direct)
	if err != nil {
		return nil, err
	}
	return &http.Transport{Dial: dialer.Dial}, nil
}

func socksAuth(user *url.Userinfo) *proxy.Auth {
	if user == nil {
		return nil
	}
	password, _ := user.Password()
	return &proxy.Auth{User: user.Username(), Password: password}
}
