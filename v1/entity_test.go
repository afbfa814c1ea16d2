package lemmy

import (
	"errors"
	"testing"

	"github.com/go-lemmy/lemmy-client/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult(t *testing.T) {
	t.Run("success shape", func(t *testing.T) {
		rsp, err := decodeResult[types.LoginResponse]([]byte(`{"jwt":"abc","registration_created":false,"verify_email_sent":false}`))
		require.NoError(t, err)
		require.NotNil(t, rsp.JWT)
		assert.Equal(t, "abc", *rsp.JWT)
	})

	t.Run("error shape", func(t *testing.T) {
		_, err := decodeResult[types.LoginResponse]([]byte(`{"error":"incorrect_login"}`))
		var aerr *APIError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, KindIncorrectLogin, aerr.Kind)
		assert.Equal(t, "Lemmy error: incorrect_login", aerr.Error())
	})

	t.Run("error shape with message", func(t *testing.T) {
		_, err := decodeResult[types.SuccessResponse]([]byte(`{"error":"invalid_body_field","message":"unknown field"}`))
		var aerr *APIError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, KindInvalidBodyField, aerr.Kind)
		assert.Equal(t, "Lemmy error: invalid_body_field: unknown field", aerr.Error())
	})

	// the error shape takes priority when a body could satisfy both; the
	// decoder ignores unknown members, so this is what keeps an error body
	// from masquerading as a response with no required members
	t.Run("error shape wins over success shape", func(t *testing.T) {
		_, err := decodeResult[types.SuccessResponse]([]byte(`{"error":"not_logged_in","success":true}`))
		var aerr *APIError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, KindNotLoggedIn, aerr.Kind)
	})

	// kinds this client does not know about pass through as raw values
	t.Run("unknown error kind", func(t *testing.T) {
		_, err := decodeResult[types.SuccessResponse]([]byte(`{"error":"brand_new_failure_mode"}`))
		var aerr *APIError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, ErrorKind("brand_new_failure_mode"), aerr.Kind)
	})

	t.Run("neither shape", func(t *testing.T) {
		_, err := decodeResult[types.LoginResponse]([]byte(`nonsense`))
		assert.ErrorIs(t, err, ErrCouldNotUnmarshalResponse)
		var aerr *APIError
		assert.False(t, errors.As(err, &aerr))
	})

	t.Run("scalar body", func(t *testing.T) {
		rsp, err := decodeResult[string]([]byte(`"0.19.3"`))
		require.NoError(t, err)
		assert.Equal(t, "0.19.3", *rsp)
	})
}

func TestQueryString(t *testing.T) {
	tests := []struct {
		Name   string
		Form   interface{}
		Expect string
	}{
		{
			Name:   "empty form",
			Form:   types.GetPosts{},
			Expect: "",
		},
		{
			Name:   "nil form",
			Form:   (*types.GetPosts)(nil),
			Expect: "",
		},
		{
			Name: "optional members",
			Form: types.GetPosts{
				Sort:  types.Ptr(types.SortActive),
				Page:  types.Ptr(int64(2)),
				Limit: types.Ptr(int64(20)),
			},
			Expect: "limit=20&page=2&sort=Active",
		},
		{
			Name: "required members",
			Form: types.Search{
				Q:    "gopher lemmy",
				Sort: types.Ptr(types.SortTopAll),
			},
			Expect: "q=gopher+lemmy&sort=TopAll",
		},
	}
	for _, e := range tests {
		t.Run(e.Name, func(t *testing.T) {
			q, err := queryString(e.Form)
			require.NoError(t, err)
			assert.Equal(t, e.Expect, q)
		})
	}
}
