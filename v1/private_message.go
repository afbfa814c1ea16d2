package lemmy

import (
	"context"
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/types"
)

func (c *Client) CreatePrivateMessage(cxt context.Context, form types.CreatePrivateMessage, opts ...RequestOption) (*types.PrivateMessageResponse, error) {
	return Do[types.PrivateMessageResponse](cxt, c, http.MethodPost, "private_message", NewRequest(form, opts...))
}

func (c *Client) EditPrivateMessage(cxt context.Context, form types.EditPrivateMessage, opts ...RequestOption) (*types.PrivateMessageResponse, error) {
	return Do[types.PrivateMessageResponse](cxt, c, http.MethodPut, "private_message", NewRequest(form, opts...))
}

func (c *Client) DeletePrivateMessage(cxt context.Context, form types.DeletePrivateMessage, opts ...RequestOption) (*types.PrivateMessageResponse, error) {
	return Do[types.PrivateMessageResponse](cxt, c, http.MethodPost, "private_message/delete", NewRequest(form, opts...))
}

func (c *Client) MarkPrivateMessageAsRead(cxt context.Context, form types.MarkPrivateMessageAsRead, opts ...RequestOption) (*types.PrivateMessageResponse, error) {
	return Do[types.PrivateMessageResponse](cxt, c, http.MethodPost, "private_message/mark_as_read", NewRequest(form, opts...))
}

func (c *Client) GetPrivateMessages(cxt context.Context, form types.GetPrivateMessages, opts ...RequestOption) (*types.PrivateMessagesResponse, error) {
	return Do[types.PrivateMessagesResponse](cxt, c, http.MethodGet, "private_message/list", NewRequest(form, opts...))
}

func (c *Client) ReportPrivateMessage(cxt context.Context, form types.CreatePrivateMessageReport, opts ...RequestOption) (*types.PrivateMessageReportResponse, error) {
	return Do[types.PrivateMessageReportResponse](cxt, c, http.MethodPost, "private_message/report", NewRequest(form, opts...))
}

func (c *Client) ResolvePrivateMessageReport(cxt context.Context, form types.ResolvePrivateMessageReport, opts ...RequestOption) (*types.PrivateMessageReportResponse, error) {
	return Do[types.PrivateMessageReportResponse](cxt, c, http.MethodPut, "private_message/report/resolve", NewRequest(form, opts...))
}

func (c *Client) ListPrivateMessageReports(cxt context.Context, form types.ListPrivateMessageReports, opts ...RequestOption) (*types.ListPrivateMessageReportsResponse, error) {
	return Do[types.ListPrivateMessageReportsResponse](cxt, c, http.MethodGet, "private_message/report/list", NewRequest(form, opts...))
}
