package lemmy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-lemmy/lemmy-client/v1/events"
	"github.com/go-lemmy/lemmy-client/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testService struct {
	svr *httptest.Server
}

func (s *testService) Domain() string {
	return strings.TrimPrefix(s.svr.URL, "http://")
}

func (s *testService) Run() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v3/user/login", func(w http.ResponseWriter, req *http.Request) {
		var form types.Login
		err := json.NewDecoder(req.Body).Decode(&form)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_body_field"}`)
			return
		}
		if form.UsernameOrEmail == "gopher" && form.Password == "hunter2" {
			fmt.Fprint(w, `{"jwt":"abc","registration_created":false,"verify_email_sent":false}`)
		} else {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"incorrect_login"}`)
		}
	})

	// reflects request headers of interest back to the caller
	mux.HandleFunc("/api/v3/headers", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"authorization": req.Header.Get("Authorization"),
			"user_agent":    req.Header.Get("User-Agent"),
			"x_custom":      req.Header.Get("X-Custom"),
		})
	})

	mux.HandleFunc("/api/v3/post/list", func(w http.ResponseWriter, req *http.Request) {
		if req.ContentLength > 0 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"unknown","message":"GET must not carry a body"}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"posts":     []interface{}{},
			"next_page": "PaginationCursor(" + req.URL.RawQuery + ")",
		})
	})

	mux.HandleFunc("/api/v3/user/logout", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.RawQuery != "" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"unknown","message":"POST must not carry a query string"}`)
			return
		}
		if req.Header.Get("Content-Type") != JSON {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"unknown","message":"expected a JSON body"}`)
			return
		}
		fmt.Fprint(w, `{"success":true}`)
	})

	mux.HandleFunc("/api/v3/garbage", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `this is not JSON at all`)
	})

	s.svr = httptest.NewServer(mux)
}

var service testService

func TestMain(m *testing.M) {
	service.Run()
	defer service.svr.Close()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	client, err := New(NewClientOptions(service.Domain(), false), opts...)
	require.NoError(t, err)
	return client
}

func TestBuildRoute(t *testing.T) {
	tests := []struct {
		Domain string
		Secure bool
		Path   string
		Expect string
	}{
		{"lemmy.example", true, "user/login", "https://lemmy.example/api/v3/user/login"},
		{"lemmy.example", false, "user/login", "http://lemmy.example/api/v3/user/login"},
		{"lemmy.ml", true, "post/list", "https://lemmy.ml/api/v3/post/list"},
		{"sub.lemmy.ml:8536", false, "site", "http://sub.lemmy.ml:8536/api/v3/site"},
	}
	for _, e := range tests {
		assert.Equal(t, e.Expect, buildRoute(NewClientOptions(e.Domain, e.Secure), e.Path))
	}
}

func TestLogin(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	rsp, err := client.Login(cxt, types.Login{UsernameOrEmail: "gopher", Password: "hunter2"})
	if assert.NoError(t, err) {
		require.NotNil(t, rsp.JWT)
		assert.Equal(t, "abc", *rsp.JWT)
		assert.False(t, rsp.RegistrationCreated)
	}

	_, err = client.Login(cxt, types.Login{UsernameOrEmail: "gopher", Password: "wrong"})
	var aerr *APIError
	if assert.ErrorAs(t, err, &aerr) {
		assert.Equal(t, KindIncorrectLogin, aerr.Kind)
	}
}

func TestUnreachableInstance(t *testing.T) {
	cxt := context.Background()
	client, err := New(NewClientOptions("localhost:1", false))
	require.NoError(t, err)

	_, err = client.GetSite(cxt)
	assert.ErrorIs(t, err, ErrCouldNotSendRequest)
	var aerr *APIError
	assert.False(t, errors.As(err, &aerr))
}

// the headers endpoint reflects what the server received
type headersResponse struct {
	Authorization string `json:"authorization"`
	UserAgent     string `json:"user_agent"`
	XCustom       string `json:"x_custom"`
}

func TestTokenPrecedence(t *testing.T) {
	cxt := context.Background()
	tests := []struct {
		Name    string
		Default string
		Request []RequestOption
		Expect  string
	}{
		{"neither", "", nil, ""},
		{"default only", "aaa", nil, "Bearer aaa"},
		{"request only", "", []RequestOption{WithToken("bbb")}, "Bearer bbb"},
		{"request wins", "aaa", []RequestOption{WithToken("bbb")}, "Bearer bbb"},
	}
	for _, e := range tests {
		t.Run(e.Name, func(t *testing.T) {
			opts := NewClientOptions(service.Domain(), false)
			if e.Default != "" {
				opts.WithJWT(e.Default)
			}
			client, err := New(opts)
			require.NoError(t, err)
			rsp, err := Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}, e.Request...))
			require.NoError(t, err)
			assert.Equal(t, e.Expect, rsp.Authorization)
		})
	}
}

func TestUserAgentDefault(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	rsp, err := Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, userAgent, rsp.UserAgent)

	// any casing of the header name suppresses the default
	rsp, err = Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}, WithRequestHeader("user-AGENT", "custom/1.0")))
	require.NoError(t, err)
	assert.Equal(t, "custom/1.0", rsp.UserAgent)
}

func TestClientHeaderDefaults(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t, WithHeader("X-Custom", "from-client"))

	rsp, err := Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, "from-client", rsp.XCustom)

	// per-call headers are never overridden by client defaults
	rsp, err = Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}, WithRequestHeader("X-Custom", "from-call")))
	require.NoError(t, err)
	assert.Equal(t, "from-call", rsp.XCustom)
}

func TestAuthorizer(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t, WithAuthorizer(NewBasicAuthorizer("admin", "swordfish")))

	// an authorizer that claims the Authorization header takes over auth
	// entirely; the token is not attached on top of it
	rsp, err := Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}, WithToken("ccc")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rsp.Authorization, "Basic "))
}

func TestGetEncodesQuery(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	rsp, err := client.GetPosts(cxt, types.GetPosts{
		Type:  types.Ptr(types.ListingLocal),
		Sort:  types.Ptr(types.SortHot),
		Limit: types.Ptr(int64(10)),
	})
	require.NoError(t, err)
	require.NotNil(t, rsp.NextPage)
	assert.Equal(t, types.PaginationCursor("PaginationCursor(limit=10&sort=Hot&type_=Local)"), *rsp.NextPage)
}

func TestGetOmitsEmptyQuery(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	rsp, err := client.GetPosts(cxt, types.GetPosts{})
	require.NoError(t, err)
	require.NotNil(t, rsp.NextPage)
	assert.Equal(t, types.PaginationCursor("PaginationCursor()"), *rsp.NextPage)
}

func TestPostCarriesBodyNotQuery(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	rsp, err := client.Logout(cxt)
	require.NoError(t, err)
	assert.True(t, rsp.Success)
}

func TestUndecodableResponse(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	_, err := Do[types.SuccessResponse](cxt, client, http.MethodGet, "garbage", NewRequest(struct{}{}))
	assert.ErrorIs(t, err, ErrCouldNotUnmarshalResponse)
}

func TestUnsupportedMethodPanics(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	assert.Panics(t, func() {
		Do[types.SuccessResponse](cxt, client, http.MethodDelete, "post", NewRequest(struct{}{}))
	})
	assert.Panics(t, func() {
		Do[types.SuccessResponse](cxt, client, http.MethodPatch, "post", NewRequest(struct{}{}))
	})
}

func TestSetJWT(t *testing.T) {
	cxt := context.Background()
	client := newTestClient(t)

	rsp, err := Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, "", rsp.Authorization)

	client.SetJWT("abc")
	rsp, err = Do[headersResponse](cxt, client, http.MethodGet, "headers", NewRequest(struct{}{}))
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", rsp.Authorization)
}

func TestObservers(t *testing.T) {
	cxt := context.Background()

	var pre, post, failed int
	obs := &events.Observers{}
	obs.Add(events.PreflightObserverFunc(func(req *http.Request) error {
		pre++
		return nil
	}))
	obs.Add(events.PostflightObserverFunc(func(req *http.Request, rsp *http.Response) error {
		post++
		return nil
	}))
	obs.Add(events.ErrorObserverFunc(func(req *http.Request, rsp *http.Response, err error) error {
		failed++
		return nil
	}))

	client := newTestClient(t, WithObservers(obs))

	_, err := client.Login(cxt, types.Login{UsernameOrEmail: "gopher", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, 1, pre)
	assert.Equal(t, 1, post)
	assert.Equal(t, 0, failed)

	_, err = client.Login(cxt, types.Login{UsernameOrEmail: "gopher", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, 2, pre)
	assert.Equal(t, 2, post)
	assert.Equal(t, 1, failed)
}
