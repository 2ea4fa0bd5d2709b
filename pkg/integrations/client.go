package integrations

import (
	"net/http"

	"golang.org/x/oauth2"

	"github.com/matzehuels/gitroast/pkg/observability"
)

// ClientOptions configures [NewHTTPClient].
type ClientOptions struct {
	// Token is sent as "Authorization: Bearer <token>". Empty means anonymous.
	Token string

	// Base is the underlying transport. Nil means http.DefaultTransport.
	// Tests point this at an httptest server's transport.
	Base http.RoundTripper
}

// NewHTTPClient returns an *http.Client whose transport reports every call to
// the observability hooks and, when a token is set, authenticates it.
//
// The client has no Timeout. Requests are bounded by their context only.
func NewHTTPClient(opts ClientOptions) *http.Client {
	var rt http.RoundTripper = observability.NewTransport(opts.Base)
	if opts.Token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
			Base:   rt,
		}
	}
	return &http.Client{Transport: rt}
}
