package lemmy

import (
	"context"
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/types"
)

func (c *Client) CreateCustomEmoji(cxt context.Context, form types.CreateCustomEmoji, opts ...RequestOption) (*types.CustomEmojiResponse, error) {
	return Do[types.CustomEmojiResponse](cxt, c, http.MethodPost, "custom_emoji", NewRequest(form, opts...))
}

func (c *Client) EditCustomEmoji(cxt context.Context, form types.EditCustomEmoji, opts ...RequestOption) (*types.CustomEmojiResponse, error) {
	return Do[types.CustomEmojiResponse](cxt, c, http.MethodPut, "custom_emoji", NewRequest(form, opts...))
}

func (c *Client) DeleteCustomEmoji(cxt context.Context, form types.DeleteCustomEmoji, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "custom_emoji/delete", NewRequest(form, opts...))
}
