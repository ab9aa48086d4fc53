package client

import (
	"net/http"
	"net/url"
)

// ProxyCredentials are explicit credentials for proxy authentication.
type ProxyCredentials struct {
	Username string
	Password string
}

// ProxySettings describe the outbound proxy resolved by the host
// environment. A nil Endpoint means requests go out directly. A nil
// Credentials means the proxy, if any, authenticates with the ambient
// system credentials instead of explicit ones.
type ProxySettings struct {
	Endpoint    *url.URL
	Credentials *ProxyCredentials
}

// buildTransport constructs the HTTP transport for the given proxy
// settings. It returns the transport and whether proxy authentication
// falls back to the ambient system credentials.
//
// The credential decision is taken from the presence of explicit
// credentials alone, independent of whether an endpoint is set. The two
// flags are deliberately not collapsed into one.
func buildTransport(ps ProxySettings) (*http.Transport, bool) {
	defaultCreds := ps.Credentials == nil

	transport := &http.Transport{}
	if ps.Endpoint != nil {
		proxyURL := *ps.Endpoint
		if !defaultCreds {
			proxyURL.User = url.UserPassword(ps.Credentials.Username, ps.Credentials.Password)
		}
		transport.Proxy = http.ProxyURL(&proxyURL)
	}

	return transport, defaultCreds
}
