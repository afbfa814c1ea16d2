package lemmy

import (
	"errors"
	"fmt"
)

// The kind of a structured error declared by a Lemmy instance. The
// enumeration is open-ended: a kind introduced by a newer server version
// passes through as its raw value rather than failing to decode.
type ErrorKind string

const (
	KindIncorrectLogin                   ErrorKind = "incorrect_login"
	KindNotLoggedIn                      ErrorKind = "not_logged_in"
	KindNotAnAdmin                       ErrorKind = "not_an_admin"
	KindNotAModerator                    ErrorKind = "not_a_moderator"
	KindEmailNotVerified                 ErrorKind = "email_not_verified"
	KindEmailRequired                    ErrorKind = "email_required"
	KindSiteBan                          ErrorKind = "site_ban"
	KindBannedFromCommunity              ErrorKind = "banned_from_community"
	KindDeleted                          ErrorKind = "deleted"
	KindLocked                           ErrorKind = "locked"
	KindRegistrationDenied               ErrorKind = "registration_denied"
	KindRegistrationClosed               ErrorKind = "registration_closed"
	KindRegistrationApplicationIsPending ErrorKind = "registration_application_is_pending"
	KindPasswordsDoNotMatch              ErrorKind = "passwords_do_not_match"
	KindCaptchaIncorrect                 ErrorKind = "captcha_incorrect"
	KindRateLimitError                   ErrorKind = "rate_limit_error"
	KindInvalidURL                       ErrorKind = "invalid_url"
	KindCouldntFindPost                  ErrorKind = "couldnt_find_post"
	KindCouldntFindComment               ErrorKind = "couldnt_find_comment"
	KindCouldntFindCommunity             ErrorKind = "couldnt_find_community"
	KindCouldntFindPerson                ErrorKind = "couldnt_find_person"
	KindPersonIsBlocked                  ErrorKind = "person_is_blocked"
	KindInstanceIsBlocked                ErrorKind = "instance_is_blocked"
	KindLanguageNotAllowed               ErrorKind = "language_not_allowed"
	KindOnlyModsCanPostInCommunity       ErrorKind = "only_mods_can_post_in_community"
	KindNoPostEditAllowed                ErrorKind = "no_post_edit_allowed"
	KindNoCommentEditAllowed             ErrorKind = "no_comment_edit_allowed"
	KindMissingTotpToken                 ErrorKind = "missing_totp_token"
	KindIncorrectTotpToken               ErrorKind = "incorrect_totp_token"
	KindTotpAlreadyEnabled               ErrorKind = "totp_already_enabled"
	KindCannotBlockYourself              ErrorKind = "cannot_block_yourself"
	KindInvalidBodyField                 ErrorKind = "invalid_body_field"
	KindUnknown                          ErrorKind = "unknown"
)

// An error explicitly declared by the API in a response body. Callers match
// it with errors.As and inspect the kind to decide what to do, e.g. prompt
// for re-authentication on KindNotLoggedIn.
type APIError struct {
	Kind    ErrorKind `json:"error"`
	Message string    `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Lemmy error: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("Lemmy error: %s", e.Kind)
}

// Base errors for failures that occur before or after the server has had its
// say. The cause is wrapped opaquely; callers match the base with errors.Is,
// never by inspecting the underlying value.
var (
	ErrCouldNotMarshalForm       = errors.New("Could not marshal request form")
	ErrCouldNotSendRequest       = errors.New("Could not send request")
	ErrCouldNotAuthorize         = errors.New("Could not authorize request")
	ErrCouldNotUnmarshalResponse = errors.New("Could not unmarshal response")
)

func wrapErr(err, base error) error {
	return wrappedErr{
		Err:  err,
		Base: base,
	}
}

type wrappedErr struct {
	Err, Base error
}

func (e wrappedErr) Error() string {
	return e.Err.Error()
}

func (e wrappedErr) Unwrap() error {
	return e.Base
}
