package lemmy

// A request envelope carrying the serializable form for one endpoint, along
// with an optional token and extra headers that apply to this call only. A
// token provided here takes precedence over the client's default token.
type Request[F any] struct {
	Body   F
	JWT    string
	Header map[string]string
}

// Create a request envelope for a form
func NewRequest[F any](form F, opts ...RequestOption) Request[F] {
	var ropts requestOptions
	for _, opt := range opts {
		opt(&ropts)
	}
	return Request[F]{
		Body:   form,
		JWT:    ropts.jwt,
		Header: ropts.header,
	}
}

// Options cannot operate on the envelope directly since it is generic over
// the form; they collect into this intermediate instead.
type requestOptions struct {
	jwt    string
	header map[string]string
}

type RequestOption func(*requestOptions)

// WithToken provides a token for a single request, overriding the client
// default for that call only.
func WithToken(jwt string) RequestOption {
	return func(o *requestOptions) {
		o.jwt = jwt
	}
}

// WithRequestHeader adds a header to a single request. Headers set this way
// are never overridden by client defaults or by the default user agent.
func WithRequestHeader(key, val string) RequestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = make(map[string]string)
		}
		o.header[key] = val
	}
}
