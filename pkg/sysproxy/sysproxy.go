// Package sysproxy discovers the outbound proxy configured in the host
// environment. The discovery mechanism is a black box to the rest of the
// module: it yields a proxy endpoint (or none) and optional explicit
// credentials, packaged as client.ProxySettings.
package sysproxy

import (
	"net/url"
	"os"
	"strings"

	"github.com/drivescout/graph-drive-client/pkg/client"
)

// proxyEnvKeys in lookup order. HTTPS wins because Graph is HTTPS-only.
var proxyEnvKeys = []string{"HTTPS_PROXY", "https_proxy", "HTTP_PROXY", "http_proxy"}

// Resolve inspects the process environment and returns the proxy settings
// for the client factory. Credentials embedded in the proxy URL become
// explicit credentials; a bare URL leaves proxy authentication to the
// ambient system credentials.
func Resolve() client.ProxySettings {
	return FromEnv(os.Getenv)
}

// FromEnv is Resolve with a substitutable environment lookup.
func FromEnv(getenv func(string) string) client.ProxySettings {
	for _, key := range proxyEnvKeys {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			continue
		}

		endpoint, creds, ok := parseProxyURL(raw)
		if !ok {
			continue
		}

		return client.ProxySettings{Endpoint: endpoint, Credentials: creds}
	}

	return client.ProxySettings{}
}

// parseProxyURL parses a proxy environment value. Bare host:port values
// get an http scheme; userinfo is split out of the endpoint.
func parseProxyURL(raw string) (*url.URL, *client.ProxyCredentials, bool) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, nil, false
	}

	var creds *client.ProxyCredentials
	if u.User != nil {
		password, _ := u.User.Password()
		creds = &client.ProxyCredentials{
			Username: u.User.Username(),
			Password: password,
		}
		u.User = nil
	}

	return u, creds, true
}
