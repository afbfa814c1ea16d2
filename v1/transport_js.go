//go:build js && wasm

package lemmy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall/js"
)

// The browser backend performs requests through the host's fetch capability.
// Cancellation is best-effort: an AbortController is wired to the request
// context, so tearing down the calling context (e.g. a UI component going
// away) aborts the in-flight fetch. A response that arrives after the abort
// races with it and is simply discarded.
type fetchTransport struct{}

func defaultTransport() http.RoundTripper {
	return fetchTransport{}
}

func (t fetchTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	global := js.Global()

	opts := global.Get("Object").New()
	opts.Set("method", req.Method)

	headers := global.Get("Object").New()
	for k, v := range req.Header {
		headers.Set(k, strings.Join(v, ", "))
	}
	opts.Set("headers", headers)

	if req.Body != nil {
		defer req.Body.Close()
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			buf := global.Get("Uint8Array").New(len(data))
			js.CopyBytesToJS(buf, data)
			opts.Set("body", buf)
		}
	}

	ctrl := global.Get("AbortController").New()
	opts.Set("signal", ctrl.Get("signal"))

	cxt := req.Context()
	rsp, err := await(cxt, global.Call("fetch", req.URL.String(), opts))
	if err != nil {
		if cxt.Err() != nil {
			ctrl.Call("abort")
			return nil, cxt.Err()
		}
		return nil, err
	}

	data, err := await(cxt, rsp.Call("arrayBuffer"))
	if err != nil {
		if cxt.Err() != nil {
			return nil, cxt.Err()
		}
		return nil, err
	}
	buf := global.Get("Uint8Array").New(data)
	body := make([]byte, buf.Get("byteLength").Int())
	js.CopyBytesToGo(body, buf)

	status := rsp.Get("status").Int()
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, rsp.Get("statusText").String()),
		StatusCode:    status,
		Header:        responseHeaders(rsp),
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

// Block on a promise until it settles or the context is torn down
func await(cxt context.Context, promise js.Value) (js.Value, error) {
	okch := make(chan js.Value, 1)
	errch := make(chan error, 1)

	success := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		okch <- args[0]
		return nil
	})
	defer success.Release()
	failure := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		errch <- js.Error{Value: args[0]}
		return nil
	})
	defer failure.Release()

	promise.Call("then", success, failure)

	select {
	case v := <-okch:
		return v, nil
	case err := <-errch:
		return js.Undefined(), err
	case <-cxt.Done():
		return js.Undefined(), errAborted
	}
}

var errAborted = fmt.Errorf("request aborted")

func responseHeaders(rsp js.Value) http.Header {
	hdr := make(http.Header)
	iter := rsp.Get("headers").Call("entries")
	for {
		next := iter.Call("next")
		if next.Get("done").Bool() {
			break
		}
		pair := next.Get("value")
		hdr.Add(pair.Index(0).String(), pair.Index(1).String())
	}
	return hdr
}
