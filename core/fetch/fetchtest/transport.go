// Package fetchtest provides an HTTP transport for testing code that builds
// *.wikipedia.org URLs: requests keep their path but are answered by a
// local httptest server.
package fetchtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Transport redirects every request to a test server and records the
// host each request was built for.
type Transport struct {
	base *url.URL

	// Err, when set, is returned instead of contacting the server.
	Err error

	mu    sync.Mutex
	hosts []string
}

// NewServer starts handler on an httptest server closed at test cleanup
// and returns a Transport pointing at it.
func NewServer(t testing.TB, handler http.Handler) *Transport {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)
	return &Transport{base: base}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.hosts = append(t.hosts, req.URL.Host)
	t.mu.Unlock()

	if t.Err != nil {
		return nil, t.Err
	}

	c := req.Clone(req.Context())
	c.URL.Scheme = t.base.Scheme
	c.URL.Host = t.base.Host
	c.Host = t.base.Host
	return http.DefaultTransport.RoundTrip(c)
}

// Client returns an http.Client using the transport.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// Hosts returns the hosts requested so far.
func (t *Transport) Hosts() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.hosts...)
}
