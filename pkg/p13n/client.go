// Package p13n drives the personalization endpoints of one X account
// session. A Client is built from operator-supplied session tokens and
// exposes the handful of interest operations the account settings page
// uses: read the followed and disabled interest categories, replace the
// disabled list, replace the full interest list, and export the raw
// interests payload.
package p13n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/oauth2"
)

const (
	DEF_BASE_URL = "https://api.x.com"

	interestsEndpoint   = "/1.1/account/personalization/twitter_interests.json"
	preferencesEndpoint = "/1.1/account/personalization/p13n_preferences.json"
)

// Operation names used in errors and log lines.
const (
	opFetchInterests = "fetch_interests"
	opFetchDisabled  = "fetch_disabled"
	opWriteDisabled  = "write_disabled"
	opWriteInterests = "write_interests"
	opFetchRaw       = "fetch_raw"
)

// ClientOpts holds the optional knobs of a Client.
type ClientOpts struct {
	// BaseURL overrides the API origin. Defaults to DEF_BASE_URL.
	BaseURL string
	// ProxyURL routes all traffic through an http, https or socks5
	// proxy.
	ProxyURL string
	// UserAgent overrides the browser user agent string the client
	// impersonates. Defaults to DEF_USER_AGENT.
	UserAgent string
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration
	// Logger receives one event per operation and, at debug level, one
	// per HTTP exchange. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Client is a session-scoped client for the personalization endpoints.
// The credential-derived headers and cookies are fixed at construction;
// a Client is safe for sequential reuse across operations.
type Client struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient validates the credentials and assembles the session client:
// a cookie jar carrying the auth_token and ct0 cookies, a bearer-token
// transport, and the fixed browser header set. No request is made until
// the first operation.
func NewClient(creds Credentials, opts *ClientOpts) (*Client, error) {
	if opts == nil {
		opts = &ClientOpts{}
	}
	creds = creds.WithDefaults()
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DEF_BASE_URL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	jar.SetCookies(base, []*http.Cookie{
		{Name: "auth_token", Value: creds.AuthToken},
		{Name: "ct0", Value: creds.CT0},
	})

	rt, err := newBaseTransport(opts.ProxyURL)
	if err != nil {
		return nil, err
	}
	rt = &debugTransport{base: rt, log: logger}
	rt = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.BearerToken}),
		Base:   rt,
	}
	headers := sessionHeaders(creds.CSRFToken)
	if opts.UserAgent != "" {
		headers.Update(USER_AGENT_KEY, opts.UserAgent)
	}
	rt = &headerTransport{base: rt, headers: headers}

	return &Client{
		client: &http.Client{
			Jar:       jar,
			Transport: rt,
			Timeout:   opts.Timeout,
		},
		baseURL: baseURL,
		log:     logger,
	}, nil
}

// CurrentInterests fetches the interest categories the account currently
// follows. A payload without the interested_in field yields an empty
// set, not an error.
func (c *Client) CurrentInterests(ctx context.Context) (InterestSet, error) {
	body, err := c.get(ctx, opFetchInterests, interestsEndpoint)
	if err != nil {
		return nil, err
	}
	set, err := parseInterests(opFetchInterests, body)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("count", len(set)).Msg("fetched current interests")
	return set, nil
}

// DisabledInterests fetches the ids already on the account's disabled
// list. Missing preference fields yield an empty set.
func (c *Client) DisabledInterests(ctx context.Context) (InterestSet, error) {
	body, err := c.get(ctx, opFetchDisabled, preferencesEndpoint)
	if err != nil {
		return nil, err
	}
	set, err := parseDisabled(opFetchDisabled, body)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("count", len(set)).Msg("fetched disabled interests")
	return set, nil
}

// ReplaceDisabledInterests overwrites the account's disabled-interest
// list with the given set. The previous list is not merged in; callers
// union beforehand when they mean to extend it.
func (c *Client) ReplaceDisabledInterests(ctx context.Context, set InterestSet) error {
	err := c.post(ctx, opWriteDisabled, preferencesEndpoint, newPreferencesUpdate(nil, set.IDs()))
	if err != nil {
		c.log.Error().Err(err).Msg("disabled interest write failed")
		return err
	}
	c.log.Info().Int("count", len(set)).Msg("updated disabled interests")
	return nil
}

// ReplaceInterestList overwrites the account's full interest list with
// the given entries, clearing both disabled lists, the same write the
// platform web client issues.
func (c *Client) ReplaceInterestList(ctx context.Context, entries []InterestEntry) error {
	err := c.post(ctx, opWriteInterests, preferencesEndpoint, newPreferencesUpdate(entries, nil))
	if err != nil {
		c.log.Error().Err(err).Msg("interest list write failed")
		return err
	}
	c.log.Info().Int("count", len(entries)).Msg("replaced interest list")
	return nil
}

// RawInterests fetches the interests payload verbatim, for export.
func (c *Client) RawInterests(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, opFetchRaw, interestsEndpoint)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &ShapeError{Op: opFetchRaw, Field: "body", Err: errNotJSON}
	}
	return json.RawMessage(body), nil
}

var errNotJSON = errors.New("response is not valid JSON")

func (c *Client) get(ctx context.Context, op, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return c.do(op, req)
}

func (c *Client) post(ctx context.Context, op, endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: encode payload: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("content-type", "application/json")
	_, err = c.do(op, req)
	return err
}

// do runs one exchange and returns the body of a 2xx response. Non-2xx
// responses become a TransportError carrying the status and a trimmed
// body excerpt, the only part of the platform's error JSON an operator
// can act on.
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Op:     op,
			Status: resp.StatusCode,
			Detail: excerpt(body),
		}
	}
	return body, nil
}

const maxDetailLen = 200

func excerpt(body []byte) string {
	s := string(bytes.TrimSpace(body))
	if len(s) > maxDetailLen {
		return s[:maxDetailLen] + "..."
	}
	return s
}
