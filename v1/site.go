package lemmy

import (
	"context"
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/types"
)

// Fetch the instance metadata, including the site configuration and, when a
// token is available, the authenticated user's info.
func (c *Client) GetSite(cxt context.Context, opts ...RequestOption) (*types.GetSiteResponse, error) {
	return Do[types.GetSiteResponse](cxt, c, http.MethodGet, "site", NewRequest(types.GetSite{}, opts...))
}

func (c *Client) CreateSite(cxt context.Context, form types.CreateSite, opts ...RequestOption) (*types.SiteResponse, error) {
	return Do[types.SiteResponse](cxt, c, http.MethodPost, "site", NewRequest(form, opts...))
}

func (c *Client) EditSite(cxt context.Context, form types.EditSite, opts ...RequestOption) (*types.SiteResponse, error) {
	return Do[types.SiteResponse](cxt, c, http.MethodPut, "site", NewRequest(form, opts...))
}

func (c *Client) BlockInstance(cxt context.Context, form types.BlockInstance, opts ...RequestOption) (*types.BlockInstanceResponse, error) {
	return Do[types.BlockInstanceResponse](cxt, c, http.MethodPost, "site/block", NewRequest(form, opts...))
}

func (c *Client) GetModlog(cxt context.Context, form types.GetModlog, opts ...RequestOption) (*types.GetModlogResponse, error) {
	return Do[types.GetModlogResponse](cxt, c, http.MethodGet, "modlog", NewRequest(form, opts...))
}

func (c *Client) Search(cxt context.Context, form types.Search, opts ...RequestOption) (*types.SearchResponse, error) {
	return Do[types.SearchResponse](cxt, c, http.MethodGet, "search", NewRequest(form, opts...))
}

// Resolve an ActivityPub object by its URL or a webfinger handle
func (c *Client) ResolveObject(cxt context.Context, form types.ResolveObject, opts ...RequestOption) (*types.ResolveObjectResponse, error) {
	return Do[types.ResolveObjectResponse](cxt, c, http.MethodGet, "resolve_object", NewRequest(form, opts...))
}

func (c *Client) GetFederatedInstances(cxt context.Context, opts ...RequestOption) (*types.GetFederatedInstancesResponse, error) {
	return Do[types.GetFederatedInstancesResponse](cxt, c, http.MethodGet, "federated_instances", NewRequest(types.GetFederatedInstances{}, opts...))
}

func (c *Client) ListRegistrationApplications(cxt context.Context, form types.ListRegistrationApplications, opts ...RequestOption) (*types.ListRegistrationApplicationsResponse, error) {
	return Do[types.ListRegistrationApplicationsResponse](cxt, c, http.MethodGet, "admin/registration_application/list", NewRequest(form, opts...))
}

func (c *Client) ApproveRegistrationApplication(cxt context.Context, form types.ApproveRegistrationApplication, opts ...RequestOption) (*types.RegistrationApplicationResponse, error) {
	return Do[types.RegistrationApplicationResponse](cxt, c, http.MethodPut, "admin/registration_application/approve", NewRequest(form, opts...))
}

func (c *Client) GetUnreadRegistrationApplicationCount(cxt context.Context, opts ...RequestOption) (*types.GetUnreadRegistrationApplicationCountResponse, error) {
	return Do[types.GetUnreadRegistrationApplicationCountResponse](cxt, c, http.MethodGet, "admin/registration_application/count", NewRequest(types.GetUnreadRegistrationApplicationCount{}, opts...))
}

func (c *Client) PurgePerson(cxt context.Context, form types.PurgePerson, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "admin/purge/person", NewRequest(form, opts...))
}

func (c *Client) PurgeCommunity(cxt context.Context, form types.PurgeCommunity, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "admin/purge/community", NewRequest(form, opts...))
}

func (c *Client) PurgePost(cxt context.Context, form types.PurgePost, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "admin/purge/post", NewRequest(form, opts...))
}

func (c *Client) PurgeComment(cxt context.Context, form types.PurgeComment, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "admin/purge/comment", NewRequest(form, opts...))
}
