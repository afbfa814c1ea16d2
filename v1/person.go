package lemmy

import (
	"context"
	"net/http"

	"github.com/go-lemmy/lemmy-client/v1/types"
)

// Log into the instance. On success the response carries a token, which the
// caller typically installs on the client with SetJWT.
func (c *Client) Login(cxt context.Context, form types.Login, opts ...RequestOption) (*types.LoginResponse, error) {
	return Do[types.LoginResponse](cxt, c, http.MethodPost, "user/login", NewRequest(form, opts...))
}

// Invalidate the current session token
func (c *Client) Logout(cxt context.Context, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "user/logout", NewRequest(struct{}{}, opts...))
}

// Register a new account. Depending on the instance configuration the
// response may indicate a pending application or outstanding email
// verification instead of carrying a token.
func (c *Client) Register(cxt context.Context, form types.Register, opts ...RequestOption) (*types.LoginResponse, error) {
	return Do[types.LoginResponse](cxt, c, http.MethodPost, "user/register", NewRequest(form, opts...))
}

func (c *Client) GetCaptcha(cxt context.Context, opts ...RequestOption) (*types.GetCaptchaResponse, error) {
	return Do[types.GetCaptchaResponse](cxt, c, http.MethodGet, "user/get_captcha", NewRequest(types.GetCaptcha{}, opts...))
}

func (c *Client) GetPersonDetails(cxt context.Context, form types.GetPersonDetails, opts ...RequestOption) (*types.GetPersonDetailsResponse, error) {
	return Do[types.GetPersonDetailsResponse](cxt, c, http.MethodGet, "user", NewRequest(form, opts...))
}

func (c *Client) GetPersonMentions(cxt context.Context, form types.GetPersonMentions, opts ...RequestOption) (*types.GetPersonMentionsResponse, error) {
	return Do[types.GetPersonMentionsResponse](cxt, c, http.MethodGet, "user/mention", NewRequest(form, opts...))
}

func (c *Client) MarkPersonMentionAsRead(cxt context.Context, form types.MarkPersonMentionAsRead, opts ...RequestOption) (*types.PersonMentionResponse, error) {
	return Do[types.PersonMentionResponse](cxt, c, http.MethodPost, "user/mention/mark_as_read", NewRequest(form, opts...))
}

func (c *Client) GetReplies(cxt context.Context, form types.GetReplies, opts ...RequestOption) (*types.GetRepliesResponse, error) {
	return Do[types.GetRepliesResponse](cxt, c, http.MethodGet, "user/replies", NewRequest(form, opts...))
}

func (c *Client) BanPerson(cxt context.Context, form types.BanPerson, opts ...RequestOption) (*types.BanPersonResponse, error) {
	return Do[types.BanPersonResponse](cxt, c, http.MethodPost, "user/ban", NewRequest(form, opts...))
}

func (c *Client) GetBannedPersons(cxt context.Context, opts ...RequestOption) (*types.BannedPersonsResponse, error) {
	return Do[types.BannedPersonsResponse](cxt, c, http.MethodGet, "user/banned", NewRequest(types.GetBannedPersons{}, opts...))
}

func (c *Client) BlockPerson(cxt context.Context, form types.BlockPerson, opts ...RequestOption) (*types.BlockPersonResponse, error) {
	return Do[types.BlockPersonResponse](cxt, c, http.MethodPost, "user/block", NewRequest(form, opts...))
}

// Permanently delete the account and optionally its content
func (c *Client) DeleteAccount(cxt context.Context, form types.DeleteAccount, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "user/delete_account", NewRequest(form, opts...))
}

func (c *Client) PasswordReset(cxt context.Context, form types.PasswordReset, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "user/password_reset", NewRequest(form, opts...))
}

func (c *Client) PasswordChangeAfterReset(cxt context.Context, form types.PasswordChangeAfterReset, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "user/password_change", NewRequest(form, opts...))
}

func (c *Client) MarkAllAsRead(cxt context.Context, opts ...RequestOption) (*types.GetRepliesResponse, error) {
	return Do[types.GetRepliesResponse](cxt, c, http.MethodPost, "user/mark_all_as_read", NewRequest(types.MarkAllAsRead{}, opts...))
}

func (c *Client) SaveUserSettings(cxt context.Context, form types.SaveUserSettings, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPut, "user/save_user_settings", NewRequest(form, opts...))
}

func (c *Client) ChangePassword(cxt context.Context, form types.ChangePassword, opts ...RequestOption) (*types.LoginResponse, error) {
	return Do[types.LoginResponse](cxt, c, http.MethodPut, "user/change_password", NewRequest(form, opts...))
}

func (c *Client) GetReportCount(cxt context.Context, form types.GetReportCount, opts ...RequestOption) (*types.GetReportCountResponse, error) {
	return Do[types.GetReportCountResponse](cxt, c, http.MethodGet, "user/report_count", NewRequest(form, opts...))
}

func (c *Client) GetUnreadCount(cxt context.Context, opts ...RequestOption) (*types.GetUnreadCountResponse, error) {
	return Do[types.GetUnreadCountResponse](cxt, c, http.MethodGet, "user/unread_count", NewRequest(types.GetUnreadCount{}, opts...))
}

func (c *Client) VerifyEmail(cxt context.Context, form types.VerifyEmail, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodPost, "user/verify_email", NewRequest(form, opts...))
}

func (c *Client) AddAdmin(cxt context.Context, form types.AddAdmin, opts ...RequestOption) (*types.AddAdminResponse, error) {
	return Do[types.AddAdminResponse](cxt, c, http.MethodPost, "admin/add", NewRequest(form, opts...))
}

func (c *Client) GenerateTotpSecret(cxt context.Context, opts ...RequestOption) (*types.GenerateTotpSecretResponse, error) {
	return Do[types.GenerateTotpSecretResponse](cxt, c, http.MethodPost, "user/totp/generate", NewRequest(struct{}{}, opts...))
}

func (c *Client) UpdateTotp(cxt context.Context, form types.UpdateTotp, opts ...RequestOption) (*types.UpdateTotpResponse, error) {
	return Do[types.UpdateTotpResponse](cxt, c, http.MethodPost, "user/totp/update", NewRequest(form, opts...))
}

// List the active login sessions for the account
func (c *Client) ListLogins(cxt context.Context, opts ...RequestOption) ([]types.LoginToken, error) {
	rsp, err := Do[[]types.LoginToken](cxt, c, http.MethodGet, "user/list_logins", NewRequest(types.ListLogins{}, opts...))
	if err != nil {
		return nil, err
	}
	return *rsp, nil
}

// Check that the provided (or default) token is still valid
func (c *Client) ValidateAuth(cxt context.Context, opts ...RequestOption) (*types.SuccessResponse, error) {
	return Do[types.SuccessResponse](cxt, c, http.MethodGet, "user/validate_auth", NewRequest(types.ValidateAuth{}, opts...))
}
