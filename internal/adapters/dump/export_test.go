package dump

import "net/http"

// NewSourceWithClientForTest exposes newSourceWithClient for testing purposes.
func NewSourceWithClientForTest(client *http.Client) *Source {
	return newSourceWithClient(client)
}
