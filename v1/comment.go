package lemmy

import (
	"context"
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/types"
)

func (c *Client) CreateComment(cxt context.Context, form types.CreateComment, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodPost, "comment", NewRequest(form, opts...))
}

func (c *Client) GetComment(cxt context.Context, form types.GetComment, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodGet, "comment", NewRequest(form, opts...))
}

func (c *Client) EditComment(cxt context.Context, form types.EditComment, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodPut, "comment", NewRequest(form, opts...))
}

func (c *Client) DeleteComment(cxt context.Context, form types.DeleteComment, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodPost, "comment/delete", NewRequest(form, opts...))
}

func (c *Client) RemoveComment(cxt context.Context, form types.RemoveComment, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodPost, "comment/remove", NewRequest(form, opts...))
}

func (c *Client) MarkCommentReplyAsRead(cxt context.Context, form types.MarkCommentReplyAsRead, opts ...RequestOption) (*types.CommentReplyResponse, error) {
	return Do[types.CommentReplyResponse](cxt, c, http.MethodPost, "comment/mark_as_read", NewRequest(form, opts...))
}

func (c *Client) LikeComment(cxt context.Context, form types.CreateCommentLike, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodPost, "comment/like", NewRequest(form, opts...))
}

func (c *Client) ListCommentLikes(cxt context.Context, form types.ListCommentLikes, opts ...RequestOption) (*types.ListCommentLikesResponse, error) {
	return Do[types.ListCommentLikesResponse](cxt, c, http.MethodGet, "comment/like/list", NewRequest(form, opts...))
}

func (c *Client) SaveComment(cxt context.Context, form types.SaveComment, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodPut, "comment/save", NewRequest(form, opts...))
}

// Mark a comment as a moderator or admin speaking officially
func (c *Client) DistinguishComment(cxt context.Context, form types.DistinguishComment, opts ...RequestOption) (*types.CommentResponse, error) {
	return Do[types.CommentResponse](cxt, c, http.MethodPost, "comment/distinguish", NewRequest(form, opts...))
}

func (c *Client) GetComments(cxt context.Context, form types.GetComments, opts ...RequestOption) (*types.GetCommentsResponse, error) {
	return Do[types.GetCommentsResponse](cxt, c, http.MethodGet, "comment/list", NewRequest(form, opts...))
}

func (c *Client) ReportComment(cxt context.Context, form types.CreateCommentReport, opts ...RequestOption) (*types.CommentReportResponse, error) {
	return Do[types.CommentReportResponse](cxt, c, http.MethodPost, "comment/report", NewRequest(form, opts...))
}

func (c *Client) ResolveCommentReport(cxt context.Context, form types.ResolveCommentReport, opts ...RequestOption) (*types.CommentReportResponse, error) {
	return Do[types.CommentReportResponse](cxt, c, http.MethodPut, "comment/report/resolve", NewRequest(form, opts...))
}

func (c *Client) ListCommentReports(cxt context.Context, form types.ListCommentReports, opts ...RequestOption) (*types.ListCommentReportsResponse, error) {
	return Do[types.ListCommentReportsResponse](cxt, c, http.MethodGet, "comment/report/list", NewRequest(form, opts...))
}
