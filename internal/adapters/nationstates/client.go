// Package nationstates implements the GameClient port against the NationStates API and site.
package nationstates

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"time"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	apiURL            = "https://www.nationstates.net/cgi-bin/api.cgi"
	siteURL           = "https://www.nationstates.net/"
	settingsPath      = "template-overall=none/page=settings"
	endorsePath       = "cgi-bin/endorse.cgi"
	httpClientTimeout = 30 * time.Second
)

// Client implements ports.GameClient.
type Client struct {
	transport http.RoundTripper
	timeout   time.Duration
}

// NewClient creates a new NationStates client using the default transport.
func NewClient() *Client {
	return &Client{transport: http.DefaultTransport, timeout: httpClientTimeout}
}

// newClientWithTransport creates a Client with a custom transport (used for testing).
func newClientWithTransport(rt http.RoundTripper) *Client {
	return &Client{transport: rt, timeout: httpClientTimeout}
}

// Membership returns the public membership queries for profile.
func (c *Client) Membership(profile domain.Profile) ports.MembershipSource {
	return &API{
		httpClient: c.newHTTPClient(nil),
		userAgent:  profile.UserAgent,
		nation:     profile.Nation,
		region:     profile.Region,
	}
}

// Login pings the nation with password to obtain a pin, then opens a site session
// and scrapes its localid token.
func (c *Client) Login(ctx context.Context, profile domain.Profile, password string) (ports.ActionSink, error) {
	api := &API{
		httpClient: c.newHTTPClient(nil),
		userAgent:  profile.UserAgent,
		nation:     profile.Nation,
		region:     profile.Region,
	}

	pin, err := api.Ping(ctx, password)
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create cookie jar")
	}

	session := &Session{
		httpClient: c.newHTTPClient(jar),
		userAgent:  profile.UserAgent,
	}
	if err := session.Authenticate(ctx, pin); err != nil {
		return nil, err
	}

	return session, nil
}

func (c *Client) newHTTPClient(jar http.CookieJar) *http.Client {
	return &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
		Jar:       jar,
	}
}
