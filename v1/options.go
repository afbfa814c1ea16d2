package lemmy

import (
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/events"
)

// Options for instantiating a client. The domain identifies the instance the
// client sends requests to and must not include a scheme prefix; whether the
// scheme is HTTPS or HTTP is selected by Secure. The domain is not validated
// up front: a malformed domain surfaces as a transport failure when the first
// request is performed.
type ClientOptions struct {
	// Domain of the instance, e.g. "lemmy.ml", without a scheme, including
	// the subdomain if applicable.
	Domain string
	// If true, use HTTPS. If false, use HTTP.
	Secure bool
	// The token used with every request that does not provide its own.
	JWT string
}

// Create options for the named instance
func NewClientOptions(domain string, secure bool) ClientOptions {
	return ClientOptions{
		Domain: domain,
		Secure: secure,
	}
}

// WithJWT attaches a default token to the options. It is ignored for requests
// that provide a token of their own.
func (o *ClientOptions) WithJWT(jwt string) {
	o.JWT = jwt
}

// Client configuration
type Config struct {
	Options    ClientOptions
	Transport  http.RoundTripper
	Authorizer Authorizer
	Observers  *events.Observers
	Header     http.Header
	Verbose    bool
	Debug      bool
}

func (c Config) WithOptions(opts []Option) Config {
	for _, opt := range opts {
		c = opt(c)
	}
	return c
}

type Option func(Config) Config

func WithTransport(t http.RoundTripper) Option {
	return func(c Config) Config {
		c.Transport = t
		return c
	}
}

func WithAuthorizer(auth Authorizer) Option {
	return func(c Config) Config {
		c.Authorizer = auth
		return c
	}
}

func WithObservers(obs *events.Observers) Option {
	return func(c Config) Config {
		c.Observers = obs
		return c
	}
}

func WithHeader(key, val string) Option {
	return func(c Config) Config {
		if c.Header == nil {
			c.Header = make(http.Header)
		}
		c.Header.Set(key, val)
		return c
	}
}

func WithHeaders(hdr http.Header) Option {
	return func(c Config) Config {
		if c.Header == nil {
			c.Header = hdr
		} else {
			for k, v := range hdr {
				c.Header[k] = v
			}
		}
		return c
	}
}

func WithDebug(on bool) Option {
	return func(c Config) Config {
		c.Debug, c.Verbose = on, on
		return c
	}
}
