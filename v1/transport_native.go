//go:build !js

package lemmy

import (
	"net/http"
)

// The native backend performs requests over the standard HTTP stack. The
// transport is shared so connections are pooled and reused across clients. No
// timeout is imposed here; callers needing bounded latency provide a deadline
// on the request context.
var sharedTransport = &http.Transport{}

func defaultTransport() http.RoundTripper {
	return sharedTransport
}
