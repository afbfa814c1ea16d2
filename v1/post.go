package lemmy

import (
	"context"
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/types"
)

func (c *Client) CreatePost(cxt context.Context, form types.CreatePost, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPost, "post", NewRequest(form, opts...))
}

func (c *Client) GetPost(cxt context.Context, form types.GetPost, opts ...RequestOption) (*types.GetPostResponse, error) {
	return Do[types.GetPostResponse](cxt, c, http.MethodGet, "post", NewRequest(form, opts...))
}

func (c *Client) EditPost(cxt context.Context, form types.EditPost, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPut, "post", NewRequest(form, opts...))
}

func (c *Client) DeletePost(cxt context.Context, form types.DeletePost, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPost, "post/delete", NewRequest(form, opts...))
}

func (c *Client) RemovePost(cxt context.Context, form types.RemovePost, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPost, "post/remove", NewRequest(form, opts...))
}

func (c *Client) MarkPostAsRead(cxt context.Context, form types.MarkPostAsRead, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "post/mark_as_read", NewRequest(form, opts...))
}

func (c *Client) HidePost(cxt context.Context, form types.HidePost, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "post/hide", NewRequest(form, opts...))
}

func (c *Client) LockPost(cxt context.Context, form types.LockPost, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPost, "post/lock", NewRequest(form, opts...))
}

func (c *Client) FeaturePost(cxt context.Context, form types.FeaturePost, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPost, "post/feature", NewRequest(form, opts...))
}

// List posts, paged with the cursor returned alongside the previous page
func (c *Client) GetPosts(cxt context.Context, form types.GetPosts, opts ...RequestOption) (*types.GetPostsResponse, error) {
	return Do[types.GetPostsResponse](cxt, c, http.MethodGet, "post/list", NewRequest(form, opts...))
}

func (c *Client) LikePost(cxt context.Context, form types.CreatePostLike, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPost, "post/like", NewRequest(form, opts...))
}

func (c *Client) ListPostLikes(cxt context.Context, form types.ListPostLikes, opts ...RequestOption) (*types.ListPostLikesResponse, error) {
	return Do[types.ListPostLikesResponse](cxt, c, http.MethodGet, "post/like/list", NewRequest(form, opts...))
}

func (c *Client) SavePost(cxt context.Context, form types.SavePost, opts ...RequestOption) (*types.PostResponse, error) {
	return Do[types.PostResponse](cxt, c, http.MethodPut, "post/save", NewRequest(form, opts...))
}

func (c *Client) ReportPost(cxt context.Context, form types.CreatePostReport, opts ...RequestOption) (*types.PostReportResponse, error) {
	return Do[types.PostReportResponse](cxt, c, http.MethodPost, "post/report", NewRequest(form, opts...))
}

func (c *Client) ResolvePostReport(cxt context.Context, form types.ResolvePostReport, opts ...RequestOption) (*types.PostReportResponse, error) {
	return Do[types.PostReportResponse](cxt, c, http.MethodPut, "post/report/resolve", NewRequest(form, opts...))
}

func (c *Client) ListPostReports(cxt context.Context, form types.ListPostReports, opts ...RequestOption) (*types.ListPostReportsResponse, error) {
	return Do[types.ListPostReportsResponse](cxt, c, http.MethodGet, "post/report/list", NewRequest(form, opts...))
}

// Fetch the link metadata the instance would embed for a URL
func (c *Client) GetSiteMetadata(cxt context.Context, form types.GetSiteMetadata, opts ...RequestOption) (*types.GetSiteMetadataResponse, error) {
	return Do[types.GetSiteMetadataResponse](cxt, c, http.MethodGet, "post/site_metadata", NewRequest(form, opts...))
}
