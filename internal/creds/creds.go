// Package creds loads the four session tokens from the places an
// operator keeps them: a JSON credentials file, environment variables,
// the OS keyring, or a browser cookie store. Every source yields a
// validated p13n.Credentials value or an error naming what is missing;
// nothing here performs network traffic.
package creds

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/p13nctl/p13nctl/internal/cookies"
	"github.com/p13nctl/p13nctl/pkg/p13n"
)

const (
	// DEF_CONFIG_FILE is the credentials file picked up from the
	// working directory when no --config path is given.
	DEF_CONFIG_FILE = "config.json"

	// cookieDomain is the domain whose cookies carry the session.
	cookieDomain = "x.com"
)

// Load reads and validates a JSON credentials file. A missing ct0
// field defaults to the csrf token.
func Load(fs afero.Fs, path string) (p13n.Credentials, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return p13n.Credentials{}, fmt.Errorf("read credentials file: %w", err)
	}
	var c p13n.Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return p13n.Credentials{}, fmt.Errorf("credentials file %s: invalid JSON: %w", path, err)
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return p13n.Credentials{}, fmt.Errorf("credentials file %s: %w", path, err)
	}
	return c, nil
}

// FromCookieStore lifts the auth_token and ct0 session cookies out of a
// browser cookie store (Netscape export or Firefox profile database).
// The csrf token defaults to the ct0 value. The bearer token is a
// header, never a cookie, so it has to come from the environment.
func FromCookieStore(path string) (p13n.Credentials, error) {
	values, source, err := cookies.Extract(path, cookieDomain, "auth_token", "ct0")
	if err != nil {
		return p13n.Credentials{}, err
	}
	return fromCookies(values, fmt.Sprintf("%s cookie store %s", source.Browser, path))
}

// FromBrowser scans Firefox and LibreWolf profiles for a store holding
// the session cookies and lifts them from the first one found.
func FromBrowser() (p13n.Credentials, error) {
	values, source, err := cookies.FromBrowser(cookieDomain, "auth_token", "ct0")
	if err != nil {
		return p13n.Credentials{}, err
	}
	return fromCookies(values, fmt.Sprintf("%s cookie store %s", source.Browser, source.Path))
}

func fromCookies(values map[string]string, sourceDesc string) (p13n.Credentials, error) {
	c := p13n.Credentials{
		BearerToken: os.Getenv(ENV_BEARER_TOKEN),
		AuthToken:   values["auth_token"],
		CT0:         values["ct0"],
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		if c.BearerToken == "" {
			return p13n.Credentials{}, fmt.Errorf("%s has no bearer token; set %s", sourceDesc, ENV_BEARER_TOKEN)
		}
		return p13n.Credentials{}, fmt.Errorf("%s: %w", sourceDesc, err)
	}
	return c, nil
}
