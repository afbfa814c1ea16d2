package types

import (
	"time"
)

type Person struct {
	ID           PersonID   `json:"id"`
	Name         string     `json:"name"`
	DisplayName  *string    `json:"display_name,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
	Banned       bool       `json:"banned"`
	Published    time.Time  `json:"published"`
	Updated      *time.Time `json:"updated,omitempty"`
	ActorID      string     `json:"actor_id"`
	Bio          *string    `json:"bio,omitempty"`
	Local        bool       `json:"local"`
	Banner       *string    `json:"banner,omitempty"`
	Deleted      bool       `json:"deleted"`
	MatrixUserID *string    `json:"matrix_user_id,omitempty"`
	BotAccount   bool       `json:"bot_account"`
	BanExpires   *time.Time `json:"ban_expires,omitempty"`
	InstanceID   InstanceID `json:"instance_id"`
}

type PersonAggregates struct {
	PersonID     PersonID `json:"person_id"`
	PostCount    int64    `json:"post_count"`
	CommentCount int64    `json:"comment_count"`
}

type PersonView struct {
	Person  Person           `json:"person"`
	Counts  PersonAggregates `json:"counts"`
	IsAdmin bool             `json:"is_admin"`
}

type LocalUser struct {
	ID                       LocalUserID `json:"id"`
	PersonID                 PersonID    `json:"person_id"`
	Email                    *string     `json:"email,omitempty"`
	ShowNSFW                 bool        `json:"show_nsfw"`
	Theme                    string      `json:"theme"`
	DefaultSortType          SortType    `json:"default_sort_type"`
	DefaultListingType       ListingType `json:"default_listing_type"`
	InterfaceLanguage        string      `json:"interface_language"`
	ShowAvatars              bool        `json:"show_avatars"`
	SendNotificationsToEmail bool        `json:"send_notifications_to_email"`
	ShowScores               bool        `json:"show_scores"`
	ShowBotAccounts          bool        `json:"show_bot_accounts"`
	ShowReadPosts            bool        `json:"show_read_posts"`
	EmailVerified            bool        `json:"email_verified"`
	AcceptedApplication      bool        `json:"accepted_application"`
	OpenLinksInNewTab        bool        `json:"open_links_in_new_tab"`
	InfiniteScrollEnabled    bool        `json:"infinite_scroll_enabled"`
	Admin                    bool        `json:"admin"`
	PostListingMode          string      `json:"post_listing_mode"`
	TOTP2FAEnabled           bool        `json:"totp_2fa_enabled"`
	EnableKeyboardNavigation bool        `json:"enable_keyboard_navigation"`
	EnableAnimatedImages     bool        `json:"enable_animated_images"`
	CollapseBotComments      bool        `json:"collapse_bot_comments"`
}

type LocalUserView struct {
	LocalUser LocalUser        `json:"local_user"`
	Person    Person           `json:"person"`
	Counts    PersonAggregates `json:"counts"`
}

// A login session issued for a local user
type LoginToken struct {
	UserID    LocalUserID `json:"user_id"`
	Published time.Time   `json:"published"`
	IP        *string     `json:"ip,omitempty"`
	UserAgent *string     `json:"user_agent,omitempty"`
}

type Login struct {
	UsernameOrEmail string  `json:"username_or_email"`
	Password        string  `json:"password"`
	TOTP2FAToken    *string `json:"totp_2fa_token,omitempty"`
}

type LoginResponse struct {
	// The token, unset when a registration application is pending or email
	// verification is outstanding
	JWT                 *string `json:"jwt,omitempty"`
	RegistrationCreated bool    `json:"registration_created"`
	VerifyEmailSent     bool    `json:"verify_email_sent"`
}

type Register struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	PasswordVerify string  `json:"password_verify"`
	ShowNSFW       *bool   `json:"show_nsfw,omitempty"`
	Email          *string `json:"email,omitempty"`
	CaptchaUUID    *string `json:"captcha_uuid,omitempty"`
	CaptchaAnswer  *string `json:"captcha_answer,omitempty"`
	Honeypot       *string `json:"honeypot,omitempty"`
	Answer         *string `json:"answer,omitempty"`
}

type CaptchaResponse struct {
	PNG  string `json:"png"`
	WAV  string `json:"wav"`
	UUID string `json:"uuid"`
}

type GetCaptcha struct{}

type GetCaptchaResponse struct {
	// Unset when captchas are disabled on the instance
	Ok *CaptchaResponse `json:"ok,omitempty"`
}

type GetPersonDetails struct {
	PersonID    *PersonID    `json:"person_id,omitempty" url:"person_id,omitempty"`
	Username    *string      `json:"username,omitempty" url:"username,omitempty"`
	Sort        *SortType    `json:"sort,omitempty" url:"sort,omitempty"`
	Page        *int64       `json:"page,omitempty" url:"page,omitempty"`
	Limit       *int64       `json:"limit,omitempty" url:"limit,omitempty"`
	CommunityID *CommunityID `json:"community_id,omitempty" url:"community_id,omitempty"`
	SavedOnly   *bool        `json:"saved_only,omitempty" url:"saved_only,omitempty"`
}

type GetPersonDetailsResponse struct {
	PersonView PersonView               `json:"person_view"`
	Comments   []CommentView            `json:"comments"`
	Posts      []PostView               `json:"posts"`
	Moderates  []CommunityModeratorView `json:"moderates"`
}

type SaveUserSettings struct {
	ShowNSFW                 *bool        `json:"show_nsfw,omitempty"`
	Theme                    *string      `json:"theme,omitempty"`
	DefaultSortType          *SortType    `json:"default_sort_type,omitempty"`
	DefaultListingType       *ListingType `json:"default_listing_type,omitempty"`
	InterfaceLanguage        *string      `json:"interface_language,omitempty"`
	Avatar                   *string      `json:"avatar,omitempty"`
	Banner                   *string      `json:"banner,omitempty"`
	DisplayName              *string      `json:"display_name,omitempty"`
	Email                    *string      `json:"email,omitempty"`
	Bio                      *string      `json:"bio,omitempty"`
	MatrixUserID             *string      `json:"matrix_user_id,omitempty"`
	ShowAvatars              *bool        `json:"show_avatars,omitempty"`
	SendNotificationsToEmail *bool        `json:"send_notifications_to_email,omitempty"`
	BotAccount               *bool        `json:"bot_account,omitempty"`
	ShowBotAccounts          *bool        `json:"show_bot_accounts,omitempty"`
	ShowReadPosts            *bool        `json:"show_read_posts,omitempty"`
	DiscussionLanguages      []LanguageID `json:"discussion_languages,omitempty"`
	OpenLinksInNewTab        *bool        `json:"open_links_in_new_tab,omitempty"`
	InfiniteScrollEnabled    *bool        `json:"infinite_scroll_enabled,omitempty"`
	EnableKeyboardNavigation *bool        `json:"enable_keyboard_navigation,omitempty"`
	EnableAnimatedImages     *bool        `json:"enable_animated_images,omitempty"`
	CollapseBotComments      *bool        `json:"collapse_bot_comments,omitempty"`
	ShowScores               *bool        `json:"show_scores,omitempty"`
}

type ChangePassword struct {
	NewPassword       string `json:"new_password"`
	NewPasswordVerify string `json:"new_password_verify"`
	OldPassword       string `json:"old_password"`
}

type PasswordReset struct {
	Email string `json:"email"`
}

type PasswordChangeAfterReset struct {
	Token          string `json:"token"`
	Password       string `json:"password"`
	PasswordVerify string `json:"password_verify"`
}

type DeleteAccount struct {
	Password      string `json:"password"`
	DeleteContent bool   `json:"delete_content"`
}

type VerifyEmail struct {
	Token string `json:"token"`
}

type BanPerson struct {
	PersonID   PersonID `json:"person_id"`
	Ban        bool     `json:"ban"`
	RemoveData *bool    `json:"remove_data,omitempty"`
	Reason     *string  `json:"reason,omitempty"`
	Expires    *int64   `json:"expires,omitempty"`
}

type BanPersonResponse struct {
	PersonView PersonView `json:"person_view"`
	Banned     bool       `json:"banned"`
}

type GetBannedPersons struct{}

type BannedPersonsResponse struct {
	Banned []PersonView `json:"banned"`
}

type BlockPerson struct {
	PersonID PersonID `json:"person_id"`
	Block    bool     `json:"block"`
}

type BlockPersonResponse struct {
	PersonView PersonView `json:"person_view"`
	Blocked    bool       `json:"blocked"`
}

type MarkAllAsRead struct{}

type GetReportCount struct {
	CommunityID *CommunityID `json:"community_id,omitempty" url:"community_id,omitempty"`
}

type GetReportCountResponse struct {
	CommunityID           *CommunityID `json:"community_id,omitempty"`
	CommentReports        int64        `json:"comment_reports"`
	PostReports           int64        `json:"post_reports"`
	PrivateMessageReports *int64       `json:"private_message_reports,omitempty"`
}

type GetUnreadCount struct{}

type GetUnreadCountResponse struct {
	Replies         int64 `json:"replies"`
	Mentions        int64 `json:"mentions"`
	PrivateMessages int64 `json:"private_messages"`
}

type AddAdmin struct {
	PersonID PersonID `json:"person_id"`
	Added    bool     `json:"added"`
}

type AddAdminResponse struct {
	Admins []PersonView `json:"admins"`
}

type GenerateTotpSecretResponse struct {
	TotpSecretURL string `json:"totp_secret_url"`
}

type UpdateTotp struct {
	TotpToken string `json:"totp_token"`
	Enabled   bool   `json:"enabled"`
}

type UpdateTotpResponse struct {
	Enabled bool `json:"enabled"`
}

type ListLogins struct{}

type ValidateAuth struct{}

// Mentions and replies

type PersonMention struct {
	ID          int       `json:"id"`
	RecipientID PersonID  `json:"recipient_id"`
	CommentID   CommentID `json:"comment_id"`
	Read        bool      `json:"read"`
	Published   time.Time `json:"published"`
}

type PersonMentionView struct {
	PersonMention  PersonMention     `json:"person_mention"`
	Comment        Comment           `json:"comment"`
	Creator        Person            `json:"creator"`
	Post           Post              `json:"post"`
	Community      Community         `json:"community"`
	Recipient      Person            `json:"recipient"`
	Counts         CommentAggregates `json:"counts"`
	Subscribed     SubscribedType    `json:"subscribed"`
	Saved          bool              `json:"saved"`
	CreatorBlocked bool              `json:"creator_blocked"`
	MyVote         *int              `json:"my_vote,omitempty"`
}

type GetPersonMentions struct {
	Sort       *CommentSortType `json:"sort,omitempty" url:"sort,omitempty"`
	Page       *int64           `json:"page,omitempty" url:"page,omitempty"`
	Limit      *int64           `json:"limit,omitempty" url:"limit,omitempty"`
	UnreadOnly *bool            `json:"unread_only,omitempty" url:"unread_only,omitempty"`
}

type GetPersonMentionsResponse struct {
	Mentions []PersonMentionView `json:"mentions"`
}

type MarkPersonMentionAsRead struct {
	PersonMentionID int  `json:"person_mention_id"`
	Read            bool `json:"read"`
}

type PersonMentionResponse struct {
	PersonMentionView PersonMentionView `json:"person_mention_view"`
}

type CommentReply struct {
	ID          int       `json:"id"`
	RecipientID PersonID  `json:"recipient_id"`
	CommentID   CommentID `json:"comment_id"`
	Read        bool      `json:"read"`
	Published   time.Time `json:"published"`
}

type CommentReplyView struct {
	CommentReply   CommentReply      `json:"comment_reply"`
	Comment        Comment           `json:"comment"`
	Creator        Person            `json:"creator"`
	Post           Post              `json:"post"`
	Community      Community         `json:"community"`
	Recipient      Person            `json:"recipient"`
	Counts         CommentAggregates `json:"counts"`
	Subscribed     SubscribedType    `json:"subscribed"`
	Saved          bool              `json:"saved"`
	CreatorBlocked bool              `json:"creator_blocked"`
	MyVote         *int              `json:"my_vote,omitempty"`
}

type GetReplies struct {
	Sort       *CommentSortType `json:"sort,omitempty" url:"sort,omitempty"`
	Page       *int64           `json:"page,omitempty" url:"page,omitempty"`
	Limit      *int64           `json:"limit,omitempty" url:"limit,omitempty"`
	UnreadOnly *bool            `json:"unread_only,omitempty" url:"unread_only,omitempty"`
}

type GetRepliesResponse struct {
	Replies []CommentReplyView `json:"replies"`
}

type MarkCommentReplyAsRead struct {
	CommentReplyID int  `json:"comment_reply_id"`
	Read           bool `json:"read"`
}

type CommentReplyResponse struct {
	CommentReplyView CommentReplyView `json:"comment_reply_view"`
}
