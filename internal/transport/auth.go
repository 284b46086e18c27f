package transport

import "net/http"

// Authenticator applies credentials to outgoing requests.
type Authenticator interface {
	Apply(req *http.Request)
}

// NoAuth sends requests without credentials.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request) {}

// HeaderAuth sends a token in a fixed header.
type HeaderAuth struct {
	Header string
	Token  string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request) {
	if a.Token == "" {
		return
	}
	req.Header.Set(a.Header, a.Token)
}

// SocrataAppToken returns the authenticator for a Socrata application
// token. An empty token yields NoAuth.
func SocrataAppToken(token string) Authenticator {
	if token == "" {
		return &NoAuth{}
	}
	return &HeaderAuth{Header: "X-App-Token", Token: token}
}
