package nationstates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
)

const pinCookie = "pin"

// Session implements ports.ActionSink over an authenticated site session.
type Session struct {
	httpClient *http.Client
	userAgent  string
	localID    string
}

// Authenticate stores pin as the session cookie and scrapes the localid token
// from the settings page.
func (s *Session) Authenticate(ctx context.Context, pin string) error {
	site, err := url.Parse(siteURL)
	if err != nil {
		return zerr.Wrap(err, "invalid site URL")
	}
	s.httpClient.Jar.SetCookies(site, []*http.Cookie{{Name: pinCookie, Value: pin}})

	doc, err := s.do(ctx, http.MethodGet, siteURL+settingsPath, nil)
	if err != nil {
		return err
	}

	input := findElement(doc, func(n *html.Node) bool {
		return n.Data == "input" && attr(n, "name") == "localid"
	})
	if input == nil {
		return domain.ErrLocalIDNotFound
	}
	s.localID = attr(input, "value")
	return nil
}

// LocalID returns the scraped session token.
func (s *Session) LocalID() string {
	return s.localID
}

// Endorse endorses target.
func (s *Session) Endorse(ctx context.Context, target domain.Identifier) error {
	form := url.Values{
		"nation":  {target.String()},
		"action":  {"endorse"},
		"localid": {s.localID},
	}

	doc, err := s.do(ctx, http.MethodPost, siteURL+endorsePath, form)
	if err != nil {
		return zerr.With(err, "nation", target.String())
	}

	rejected := findElement(doc, func(n *html.Node) bool {
		return n.Data == "input" && attr(n, "name") == "action" && attr(n, "value") == "unendorse"
	})
	if rejected != nil {
		return zerr.With(zerr.Wrap(domain.ErrActionRejected, "could not endorse"), "nation", target.String())
	}
	return nil
}

// do sends a site request and returns the parsed page after checking it for errors.
func (s *Session) do(ctx context.Context, method, endpoint string, form url.Values) (*html.Node, error) {
	var body io.Reader = http.NoBody
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, siteFailed(err, endpoint)
	}
	req.Header.Set("User-Agent", s.userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, siteFailed(err, endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err := siteFailed(fmt.Errorf("unexpected status code %d", resp.StatusCode), endpoint)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, siteFailed(err, endpoint)
	}

	if p := findElement(doc, func(n *html.Node) bool {
		return n.Data == "p" && hasClass(n, "error")
	}); p != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSiteError, textContent(p)), "url", endpoint)
	}

	return doc, nil
}

func siteFailed(cause error, endpoint string) error {
	return zerr.With(errors.Join(domain.ErrSiteRequestFailed, cause), "url", endpoint)
}
