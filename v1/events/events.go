// The events interface provides a mechanism to observe the requests a client
// performs in a central place. This may be useful for logging failures
// uniformly across every endpoint, or for instrumenting traffic to an
// instance without touching individual call sites.
package events

import (
	"net/http"
)

type PreflightObserver interface {
	WillSendRequest(req *http.Request) error
}

type PreflightObserverFunc func(req *http.Request) error

func (o PreflightObserverFunc) WillSendRequest(req *http.Request) error {
	return o(req)
}

type PostflightObserver interface {
	DidReceiveResponse(req *http.Request, rsp *http.Response) error
}

type PostflightObserverFunc func(req *http.Request, rsp *http.Response) error

func (o PostflightObserverFunc) DidReceiveResponse(req *http.Request, rsp *http.Response) error {
	return o(req, rsp)
}

// Notified when a request fails, either in transport (rsp is nil) or because
// the instance declared a structured error in its response.
type ErrorObserver interface {
	RequestFailedWithError(req *http.Request, rsp *http.Response, err error) error
}

type ErrorObserverFunc func(req *http.Request, rsp *http.Response, err error) error

func (o ErrorObserverFunc) RequestFailedWithError(req *http.Request, rsp *http.Response, err error) error {
	return o(req, rsp, err)
}

type Observers struct {
	observers  []interface{} // all observers
	preflight  []PreflightObserver
	postflight []PostflightObserver
	failure    []ErrorObserver
}

func (o *Observers) Add(add interface{}) {
	o.observers = append(o.observers, add)
	if c, ok := add.(PreflightObserver); ok {
		o.preflight = append(o.preflight, c)
	}
	if c, ok := add.(PostflightObserver); ok {
		o.postflight = append(o.postflight, c)
	}
	if c, ok := add.(ErrorObserver); ok {
		o.failure = append(o.failure, c)
	}
}

func (o *Observers) WillSendRequest(req *http.Request) error {
	if o == nil {
		return nil
	}
	for _, obs := range o.preflight {
		err := obs.WillSendRequest(req)
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Observers) DidReceiveResponse(req *http.Request, rsp *http.Response) error {
	if o == nil {
		return nil
	}
	for _, obs := range o.postflight {
		err := obs.DidReceiveResponse(req, rsp)
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Observers) RequestFailedWithError(req *http.Request, rsp *http.Response, err error) error {
	if o == nil {
		return nil
	}
	for _, obs := range o.failure {
		err := obs.RequestFailedWithError(req, rsp, err)
		if err != nil {
			return err
		}
	}
	return nil
}
