package lemmy

import (
	"encoding/base64"
	"net/http"

	"golang.org/x/oauth2"
)

// An authorizer applies credentials that sit in front of an instance, e.g. a
// reverse proxy that gates access to a private deployment. It runs before the
// bearer token is attached; an authorizer that sets the Authorization header
// takes over authentication entirely and disables token attachment for the
// request.
type Authorizer interface {
	Authorize(*http.Request) error
}

type HeaderAuthorizer struct {
	header http.Header
}

func NewHeaderAuthorizer(h http.Header) HeaderAuthorizer {
	return HeaderAuthorizer{h}
}

func (a HeaderAuthorizer) Authorize(req *http.Request) error {
	for k, v := range a.header {
		if len(v) > 0 {
			req.Header.Set(k, v[0])
		}
	}
	return nil
}

type BasicAuthorizer struct {
	user, pass string
}

func NewBasicAuthorizer(u, p string) BasicAuthorizer {
	return BasicAuthorizer{u, p}
}

func (a BasicAuthorizer) Authorize(req *http.Request) error {
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(a.user+":"+a.pass)))
	return nil
}

type OAuthAuthorizer struct {
	src oauth2.TokenSource
}

func NewOAuthAuthorizer(src oauth2.TokenSource) OAuthAuthorizer {
	return OAuthAuthorizer{src}
}

func (a OAuthAuthorizer) Token() (*oauth2.Token, error) {
	return a.src.Token()
}

func (a OAuthAuthorizer) Authorize(req *http.Request) error {
	tok, err := a.src.Token()
	if err != nil {
		return err
	}
	tok.SetAuthHeader(req)
	return nil
}
