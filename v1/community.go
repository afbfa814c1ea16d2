package lemmy

import (
	"context"
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/types"
)

func (c *Client) CreateCommunity(cxt context.Context, form types.CreateCommunity, opts ...RequestOption) (*types.CommunityResponse, error) {
	return Do[types.CommunityResponse](cxt, c, http.MethodPost, "community", NewRequest(form, opts...))
}

func (c *Client) GetCommunity(cxt context.Context, form types.GetCommunity, opts ...RequestOption) (*types.GetCommunityResponse, error) {
	return Do[types.GetCommunityResponse](cxt, c, http.MethodGet, "community", NewRequest(form, opts...))
}

func (c *Client) EditCommunity(cxt context.Context, form types.EditCommunity, opts ...RequestOption) (*types.CommunityResponse, error) {
	return Do[types.CommunityResponse](cxt, c, http.MethodPut, "community", NewRequest(form, opts...))
}

func (c *Client) ListCommunities(cxt context.Context, form types.ListCommunities, opts ...RequestOption) (*types.ListCommunitiesResponse, error) {
	return Do[types.ListCommunitiesResponse](cxt, c, http.MethodGet, "community/list", NewRequest(form, opts...))
}

func (c *Client) FollowCommunity(cxt context.Context, form types.FollowCommunity, opts ...RequestOption) (*types.CommunityResponse, error) {
	return Do[types.CommunityResponse](cxt, c, http.MethodPost, "community/follow", NewRequest(form, opts...))
}

func (c *Client) BlockCommunity(cxt context.Context, form types.BlockCommunity, opts ...RequestOption) (*types.BlockCommunityResponse, error) {
	return Do[types.BlockCommunityResponse](cxt, c, http.MethodPost, "community/block", NewRequest(form, opts...))
}

func (c *Client) DeleteCommunity(cxt context.Context, form types.DeleteCommunity, opts ...RequestOption) (*types.CommunityResponse, error) {
	return Do[types.CommunityResponse](cxt, c, http.MethodPost, "community/delete", NewRequest(form, opts...))
}

// Hide a community from the public listings of this instance
func (c *Client) HideCommunity(cxt context.Context, form types.HideCommunity, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPut, "community/hide", NewRequest(form, opts...))
}

func (c *Client) RemoveCommunity(cxt context.Context, form types.RemoveCommunity, opts ...RequestOption) (*types.CommunityResponse, error) {
	return Do[types.CommunityResponse](cxt, c, http.MethodPost, "community/remove", NewRequest(form, opts...))
}

func (c *Client) TransferCommunity(cxt context.Context, form types.TransferCommunity, opts ...RequestOption) (*types.GetCommunityResponse, error) {
	return Do[types.GetCommunityResponse](cxt, c, http.MethodPost, "community/transfer", NewRequest(form, opts...))
}

func (c *Client) BanFromCommunity(cxt context.Context, form types.BanFromCommunity, opts ...RequestOption) (*types.BanFromCommunityResponse, error) {
	return Do[types.BanFromCommunityResponse](cxt, c, http.MethodPost, "community/ban_user", NewRequest(form, opts...))
}

func (c *Client) AddModToCommunity(cxt context.Context, form types.AddModToCommunity, opts ...RequestOption) (*types.AddModToCommunityResponse, error) {
	return Do[types.AddModToCommunityResponse](cxt, c, http.MethodPost, "community/mod", NewRequest(form, opts...))
}
