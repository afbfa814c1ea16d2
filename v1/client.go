// Package lemmy implements a typed client for the HTTP API of a Lemmy
// instance, v3. Every endpoint is exposed as one method accepting a typed
// form and returning a typed response; all of them funnel through a single
// dispatch routine which builds the route, applies headers and auth, performs
// exactly one round trip over the active transport and decodes the result
// envelope. The library performs no retries, no rate limiting and no caching:
// every call surfaces its raw outcome.
package lemmy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bww/go-metrics/v1"
	"github.com/dustin/go-humanize"
	"github.com/go-lemmy/lemmy-client/v1/events"
)

var requestDurationSampler = metrics.RegisterSamplerVec("lemmy_client_perform_request", "Perform an API request", []string{"domain"})

var reqctr int64

const JSON = "application/json"

// Sent with every request unless the caller provides a user agent themselves
const userAgent = "Lemmy-Client-go/0.19.3"

// An API client for a single Lemmy instance. The client may be shared across
// goroutines; concurrent calls are independent and do not serialize against
// each other.
type Client struct {
	transport http.RoundTripper
	auth      Authorizer
	header    http.Header
	obs       *events.Observers
	debug     Debug
	mtx       sync.RWMutex
	opts      ClientOptions
}

// Create a new client for an instance
func New(copts ClientOptions, opts ...Option) (*Client, error) {
	return NewWithConfig(Config{Options: copts}.WithOptions(opts))
}

// Create a new client with a configuration
func NewWithConfig(conf Config) (*Client, error) {
	transport := conf.Transport
	if transport == nil {
		transport = defaultTransport()
	}

	debug, err := Debug{
		Debug:   conf.Debug,
		Verbose: conf.Verbose,
	}.WithEnv()
	if err != nil {
		return nil, err
	}

	return &Client{
		transport: transport,
		auth:      conf.Authorizer,
		header:    conf.Header,
		obs:       conf.Observers,
		debug:     debug,
		opts:      conf.Options,
	}, nil
}

// Options returns a snapshot of the client options
func (c *Client) Options() ClientOptions {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.opts
}

// SetJWT replaces the default token used by requests that do not provide one
// of their own. It is safe to call concurrently with in-flight requests,
// which is how a token obtained from Login, or a refreshed one, is installed
// on a shared client.
func (c *Client) SetJWT(jwt string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.opts.JWT = jwt
}

// Build the absolute URL for an endpoint path. The path is used verbatim, it
// is never validated or re-encoded.
func buildRoute(opts ClientOptions, path string) string {
	var scheme string
	if opts.Secure {
		scheme = "https"
	} else {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/api/v3/%s", scheme, opts.Domain, path)
}

// Apply headers to a request. Per-call headers are applied verbatim; client
// defaults fill in whatever the call left unset; the default user agent is
// applied last and only if no user agent was provided under any casing.
func withHeaders(req *http.Request, defaults http.Header, extra map[string]string) {
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	for k, v := range defaults {
		n := http.CanonicalHeaderKey(k)
		if _, set := req.Header[n]; !set { // don't overwrite explicitly set headers
			req.Header[n] = v
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
}

// Attach bearer auth when a token is available. An Authorization header set
// explicitly by the caller, or by an authorizer, is left alone.
func maybeWithJWT(req *http.Request, jwt string) {
	if jwt != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}
}

// Do dispatches a single API request: it builds the route, encodes the form
// as a query string for GET or a JSON body for POST and PUT, applies headers
// and auth, performs exactly one round trip over the active transport, and
// decodes the result envelope into the expected response type. A token on the
// request takes precedence over the client default.
//
// The result is either the typed response, an *APIError the instance
// declared, or an opaque transport or decode failure carrying one of the
// ErrCouldNot* bases.
//
// The Lemmy API only uses GET, POST and PUT; dispatching any other method is
// a programming error and panics. This is a free function rather than a
// method because Go methods cannot introduce type parameters.
func Do[R, F any](cxt context.Context, c *Client, method, path string, req Request[F]) (*R, error) {
	start := time.Now()
	reqid := atomic.AddInt64(&reqctr, 1)

	opts := c.Options()
	route := buildRoute(opts, path)

	var hreq *http.Request
	var err error
	switch method {
	case http.MethodGet:
		q, err := queryString(req.Body)
		if err != nil {
			return nil, wrapErr(err, ErrCouldNotMarshalForm)
		}
		if q != "" {
			route += "?" + q
		}
		hreq, err = http.NewRequestWithContext(cxt, http.MethodGet, route, nil)
		if err != nil {
			return nil, wrapErr(err, ErrCouldNotSendRequest)
		}
	case http.MethodPost, http.MethodPut:
		body, err := marshalForm(req.Body)
		if err != nil {
			return nil, wrapErr(err, ErrCouldNotMarshalForm)
		}
		hreq, err = http.NewRequestWithContext(cxt, method, route, bytes.NewReader(body))
		if err != nil {
			return nil, wrapErr(err, ErrCouldNotSendRequest)
		}
		hreq.Header.Set("Content-Type", JSON)
	default:
		panic(fmt.Sprintf("lemmy: unsupported HTTP method: %q; this client only uses GET, POST and PUT", method))
	}

	withHeaders(hreq, c.header, req.Header)
	if c.auth != nil {
		err = c.auth.Authorize(hreq)
		if err != nil {
			return nil, wrapErr(err, ErrCouldNotAuthorize)
		}
	}
	jwt := req.JWT
	if jwt == "" {
		jwt = opts.JWT
	}
	maybeWithJWT(hreq, jwt)

	domain := hreq.URL.Host
	defer func() {
		requestDurationSampler.With(metrics.Tags{"domain": domain}).Observe(float64(time.Since(start)))
	}()

	err = c.obs.WillSendRequest(hreq)
	if err != nil {
		return nil, err
	}
	if c.isVerbose(hreq) || c.isDebug(hreq) {
		fmt.Printf("lemmy: [%06d] %v %v\n", reqid, hreq.Method, hreq.URL)
	}
	if c.isDebug(hreq) {
		err = c.dumpReq(os.Stdout, hreq)
		if err != nil {
			return nil, err
		}
	}

	rsp, err := c.transport.RoundTrip(hreq)
	if err != nil {
		c.obs.RequestFailedWithError(hreq, nil, err)
		return nil, wrapErr(err, ErrCouldNotSendRequest)
	}
	defer rsp.Body.Close()

	err = c.obs.DidReceiveResponse(hreq, rsp)
	if err != nil {
		return nil, err
	}
	if c.isVerbose(hreq) || c.isDebug(hreq) {
		var l string
		if rsp.ContentLength >= 0 {
			l = humanize.Bytes(uint64(rsp.ContentLength))
		} else {
			l = "<unknown>"
		}
		fmt.Printf("lemmy: [%06d] %v %v -> %v (%v)\n", reqid, hreq.Method, hreq.URL, rsp.Status, l)
	}
	if c.isDebug(hreq) {
		err = c.dumpRsp(os.Stdout, hreq, rsp)
		if err != nil {
			return nil, err
		}
	}

	// The status code is deliberately not inspected: the instance reports
	// structured errors as JSON bodies alongside error statuses, and the
	// envelope decode below distinguishes the two shapes either way.
	data, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, wrapErr(err, ErrCouldNotUnmarshalResponse)
	}

	res, err := decodeResult[R](data)
	if err != nil {
		c.obs.RequestFailedWithError(hreq, rsp, err)
		return nil, err
	}
	return res, nil
}
