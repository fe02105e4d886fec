package nationstates

import "net/http"

// NewClientWithTransportForTest exposes newClientWithTransport for testing purposes.
func NewClientWithTransportForTest(rt http.RoundTripper) *Client {
	return newClientWithTransport(rt)
}
