package nationstates

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	waMemberSeparator     = ","
	regionNationSeparator = ":"
	pinHeader             = "X-Pin"
	passwordHeader        = "X-Password"
)

type waMembersResponse struct {
	Members string `xml:"MEMBERS"`
}

type regionNationsResponse struct {
	Nations string `xml:"NATIONS"`
}

// API implements ports.MembershipSource over the public NationStates API.
type API struct {
	httpClient *http.Client
	userAgent  string
	nation     domain.Identifier
	region     domain.Identifier
}

// WorldAssemblyMembers returns every World Assembly member nation.
func (a *API) WorldAssemblyMembers(ctx context.Context) (domain.IdentifierSet, error) {
	var resp waMembersResponse
	if _, err := a.get(ctx, url.Values{"wa": {"1"}, "q": {"members"}}, nil, &resp); err != nil {
		return nil, err
	}
	return splitIdentifiers(resp.Members, waMemberSeparator), nil
}

// RegionMembers returns every nation residing in the configured region.
func (a *API) RegionMembers(ctx context.Context) (domain.IdentifierSet, error) {
	var resp regionNationsResponse
	if _, err := a.get(ctx, url.Values{"region": {a.region.String()}, "q": {"nations"}}, nil, &resp); err != nil {
		return nil, err
	}
	return splitIdentifiers(resp.Nations, regionNationSeparator), nil
}

// Ping authenticates the nation with password and returns the session pin.
func (a *API) Ping(ctx context.Context, password string) (string, error) {
	headers := http.Header{passwordHeader: {password}}
	respHeaders, err := a.get(ctx, url.Values{"nation": {a.nation.String()}, "q": {"ping"}}, headers, nil)
	if err != nil {
		return "", err
	}

	pin := respHeaders.Get(pinHeader)
	if pin == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrAuthFailed, "no pin in ping response"), "nation", a.nation.String())
	}
	return pin, nil
}

// get performs an API query and decodes the XML body into out when out is non-nil.
func (a *API) get(ctx context.Context, query url.Values, headers http.Header, out any) (http.Header, error) {
	if a.userAgent == "" {
		return nil, domain.ErrMissingUserAgent
	}

	endpoint := apiURL + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, apiFailed(err, query)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apiFailed(err, query)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusForbidden && query.Get("q") == "ping":
		return nil, zerr.With(zerr.Wrap(domain.ErrAuthFailed, "ping rejected"), "nation", a.nation.String())
	case resp.StatusCode != http.StatusOK:
		err := apiFailed(fmt.Errorf("unexpected status code %d", resp.StatusCode), query)
		return nil, zerr.With(err, "status", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.Header, nil
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrAPIParseFailed, err), "query", query.Encode())
	}
	return resp.Header, nil
}

func apiFailed(cause error, query url.Values) error {
	return zerr.With(errors.Join(domain.ErrAPIRequestFailed, cause), "query", query.Encode())
}

func splitIdentifiers(list, sep string) domain.IdentifierSet {
	if strings.TrimSpace(list) == "" {
		return domain.NewIdentifierSet()
	}
	return domain.CanonicalSet(strings.Split(strings.TrimSpace(list), sep))
}
