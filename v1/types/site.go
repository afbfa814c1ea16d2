package types

import (
	"time"
)

type Site struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Sidebar         *string    `json:"sidebar,omitempty"`
	Published       time.Time  `json:"published"`
	Updated         *time.Time `json:"updated,omitempty"`
	Icon            *string    `json:"icon,omitempty"`
	Banner          *string    `json:"banner,omitempty"`
	Description     *string    `json:"description,omitempty"`
	ActorID         string     `json:"actor_id"`
	LastRefreshedAt time.Time  `json:"last_refreshed_at"`
	InstanceID      InstanceID `json:"instance_id"`
}

type LocalSite struct {
	ID                         int              `json:"id"`
	SiteID                     int              `json:"site_id"`
	SiteSetup                  bool             `json:"site_setup"`
	EnableDownvotes            bool             `json:"enable_downvotes"`
	EnableNSFW                 bool             `json:"enable_nsfw"`
	CommunityCreationAdminOnly bool             `json:"community_creation_admin_only"`
	RequireEmailVerification   bool             `json:"require_email_verification"`
	ApplicationQuestion        *string          `json:"application_question,omitempty"`
	PrivateInstance            bool             `json:"private_instance"`
	DefaultTheme               string           `json:"default_theme"`
	DefaultPostListingType     ListingType      `json:"default_post_listing_type"`
	LegalInformation           *string          `json:"legal_information,omitempty"`
	HideModlogModNames         bool             `json:"hide_modlog_mod_names"`
	ApplicationEmailAdmins     bool             `json:"application_email_admins"`
	ActorNameMaxLength         int              `json:"actor_name_max_length"`
	FederationEnabled          bool             `json:"federation_enabled"`
	CaptchaEnabled             bool             `json:"captcha_enabled"`
	CaptchaDifficulty          string           `json:"captcha_difficulty"`
	Published                  time.Time        `json:"published"`
	Updated                    *time.Time       `json:"updated,omitempty"`
	RegistrationMode           RegistrationMode `json:"registration_mode"`
	ReportsEmailAdmins         bool             `json:"reports_email_admins"`
}

type SiteAggregates struct {
	SiteID              int   `json:"site_id"`
	Users               int64 `json:"users"`
	Posts               int64 `json:"posts"`
	Comments            int64 `json:"comments"`
	Communities         int64 `json:"communities"`
	UsersActiveDay      int64 `json:"users_active_day"`
	UsersActiveWeek     int64 `json:"users_active_week"`
	UsersActiveMonth    int64 `json:"users_active_month"`
	UsersActiveHalfYear int64 `json:"users_active_half_year"`
}

type SiteView struct {
	Site      Site           `json:"site"`
	LocalSite LocalSite      `json:"local_site"`
	Counts    SiteAggregates `json:"counts"`
}

type Language struct {
	ID   LanguageID `json:"id"`
	Code string     `json:"code"`
	Name string     `json:"name"`
}

type Tagline struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Published time.Time `json:"published"`
}

type GetSite struct{}

type MyUserInfo struct {
	LocalUserView       LocalUserView            `json:"local_user_view"`
	Follows             []CommunityFollowerView  `json:"follows"`
	Moderates           []CommunityModeratorView `json:"moderates"`
	CommunityBlocks     []Community              `json:"community_blocks"`
	InstanceBlocks      []Instance               `json:"instance_blocks"`
	PersonBlocks        []Person                 `json:"person_blocks"`
	DiscussionLanguages []LanguageID             `json:"discussion_languages"`
}

type CommunityFollowerView struct {
	Community Community `json:"community"`
	Follower  Person    `json:"follower"`
}

type GetSiteResponse struct {
	SiteView            SiteView          `json:"site_view"`
	Admins              []PersonView      `json:"admins"`
	Version             string            `json:"version"`
	MyUser              *MyUserInfo       `json:"my_user,omitempty"`
	AllLanguages        []Language        `json:"all_languages"`
	DiscussionLanguages []LanguageID      `json:"discussion_languages"`
	Taglines            []Tagline         `json:"taglines"`
	CustomEmojis        []CustomEmojiView `json:"custom_emojis"`
}

type CreateSite struct {
	Name                       string            `json:"name"`
	Sidebar                    *string           `json:"sidebar,omitempty"`
	Description                *string           `json:"description,omitempty"`
	Icon                       *string           `json:"icon,omitempty"`
	Banner                     *string           `json:"banner,omitempty"`
	EnableDownvotes            *bool             `json:"enable_downvotes,omitempty"`
	EnableNSFW                 *bool             `json:"enable_nsfw,omitempty"`
	CommunityCreationAdminOnly *bool             `json:"community_creation_admin_only,omitempty"`
	RequireEmailVerification   *bool             `json:"require_email_verification,omitempty"`
	ApplicationQuestion        *string           `json:"application_question,omitempty"`
	PrivateInstance            *bool             `json:"private_instance,omitempty"`
	DefaultTheme               *string           `json:"default_theme,omitempty"`
	DefaultPostListingType     *ListingType      `json:"default_post_listing_type,omitempty"`
	LegalInformation           *string           `json:"legal_information,omitempty"`
	ApplicationEmailAdmins     *bool             `json:"application_email_admins,omitempty"`
	HideModlogModNames         *bool             `json:"hide_modlog_mod_names,omitempty"`
	DiscussionLanguages        []LanguageID      `json:"discussion_languages,omitempty"`
	RegistrationMode           *RegistrationMode `json:"registration_mode,omitempty"`
	ReportsEmailAdmins         *bool             `json:"reports_email_admins,omitempty"`
	FederationEnabled          *bool             `json:"federation_enabled,omitempty"`
	CaptchaEnabled             *bool             `json:"captcha_enabled,omitempty"`
	CaptchaDifficulty          *string           `json:"captcha_difficulty,omitempty"`
}

// EditSite takes the same members as CreateSite with everything optional
type EditSite = CreateSite

type SiteResponse struct {
	SiteView SiteView  `json:"site_view"`
	Taglines []Tagline `json:"taglines"`
}

type Instance struct {
	ID        InstanceID `json:"id"`
	Domain    string     `json:"domain"`
	Published time.Time  `json:"published"`
	Updated   *time.Time `json:"updated,omitempty"`
	Software  *string    `json:"software,omitempty"`
	Version   *string    `json:"version,omitempty"`
}

type BlockInstance struct {
	InstanceID InstanceID `json:"instance_id"`
	Block      bool       `json:"block"`
}

type BlockInstanceResponse struct {
	Blocked bool `json:"blocked"`
}

type FederatedInstances struct {
	Linked  []InstanceWithFederationState `json:"linked"`
	Allowed []InstanceWithFederationState `json:"allowed"`
	Blocked []InstanceWithFederationState `json:"blocked"`
}

type InstanceWithFederationState struct {
	Instance
	FederationState *ReadableFederationState `json:"federation_state,omitempty"`
}

type ReadableFederationState struct {
	InstanceID       InstanceID `json:"instance_id"`
	LastSuccessfulID *int64     `json:"last_successful_id,omitempty"`
	FailCount        int        `json:"fail_count"`
	NextRetry        *time.Time `json:"next_retry,omitempty"`
}

type GetFederatedInstances struct{}

type GetFederatedInstancesResponse struct {
	FederatedInstances *FederatedInstances `json:"federated_instances,omitempty"`
}

type Search struct {
	Q             string       `json:"q" url:"q"`
	Type          *SearchType  `json:"type_,omitempty" url:"type_,omitempty"`
	CommunityID   *CommunityID `json:"community_id,omitempty" url:"community_id,omitempty"`
	CommunityName *string      `json:"community_name,omitempty" url:"community_name,omitempty"`
	CreatorID     *PersonID    `json:"creator_id,omitempty" url:"creator_id,omitempty"`
	Sort          *SortType    `json:"sort,omitempty" url:"sort,omitempty"`
	Listing       *ListingType `json:"listing_type,omitempty" url:"listing_type,omitempty"`
	Page          *int64       `json:"page,omitempty" url:"page,omitempty"`
	Limit         *int64       `json:"limit,omitempty" url:"limit,omitempty"`
}

type SearchResponse struct {
	Type        SearchType      `json:"type_"`
	Comments    []CommentView   `json:"comments"`
	Posts       []PostView      `json:"posts"`
	Communities []CommunityView `json:"communities"`
	Users       []PersonView    `json:"users"`
}

type ResolveObject struct {
	Q string `json:"q" url:"q"`
}

type ResolveObjectResponse struct {
	Comment   *CommentView   `json:"comment,omitempty"`
	Post      *PostView      `json:"post,omitempty"`
	Community *CommunityView `json:"community,omitempty"`
	Person    *PersonView    `json:"person,omitempty"`
}

type GetModlog struct {
	ModPersonID   *PersonID    `json:"mod_person_id,omitempty" url:"mod_person_id,omitempty"`
	CommunityID   *CommunityID `json:"community_id,omitempty" url:"community_id,omitempty"`
	Page          *int64       `json:"page,omitempty" url:"page,omitempty"`
	Limit         *int64       `json:"limit,omitempty" url:"limit,omitempty"`
	OtherPersonID *PersonID    `json:"other_person_id,omitempty" url:"other_person_id,omitempty"`
	PostID        *PostID      `json:"post_id,omitempty" url:"post_id,omitempty"`
	CommentID     *CommentID   `json:"comment_id,omitempty" url:"comment_id,omitempty"`
}

type ModRemovePost struct {
	ID          int       `json:"id"`
	ModPersonID PersonID  `json:"mod_person_id"`
	PostID      PostID    `json:"post_id"`
	Reason      *string   `json:"reason,omitempty"`
	Removed     bool      `json:"removed"`
	When        time.Time `json:"when_"`
}

type ModRemovePostView struct {
	ModRemovePost ModRemovePost `json:"mod_remove_post"`
	Moderator     *Person       `json:"moderator,omitempty"`
	Post          Post          `json:"post"`
	Community     Community     `json:"community"`
}

type ModRemoveComment struct {
	ID          int       `json:"id"`
	ModPersonID PersonID  `json:"mod_person_id"`
	CommentID   CommentID `json:"comment_id"`
	Reason      *string   `json:"reason,omitempty"`
	Removed     bool      `json:"removed"`
	When        time.Time `json:"when_"`
}

type ModRemoveCommentView struct {
	ModRemoveComment ModRemoveComment `json:"mod_remove_comment"`
	Moderator        *Person          `json:"moderator,omitempty"`
	Comment          Comment          `json:"comment"`
	Commenter        Person           `json:"commenter"`
	Post             Post             `json:"post"`
	Community        Community        `json:"community"`
}

type GetModlogResponse struct {
	RemovedPosts    []ModRemovePostView    `json:"removed_posts"`
	RemovedComments []ModRemoveCommentView `json:"removed_comments"`
}

// Registration applications

type RegistrationApplication struct {
	ID          RegistrationApplicationID `json:"id"`
	LocalUserID LocalUserID               `json:"local_user_id"`
	Answer      string                    `json:"answer"`
	AdminID     *PersonID                 `json:"admin_id,omitempty"`
	DenyReason  *string                   `json:"deny_reason,omitempty"`
	Published   time.Time                 `json:"published"`
}

type RegistrationApplicationView struct {
	RegistrationApplication RegistrationApplication `json:"registration_application"`
	CreatorLocalUser        LocalUser               `json:"creator_local_user"`
	Creator                 Person                  `json:"creator"`
	Admin                   *Person                 `json:"admin,omitempty"`
}

type ListRegistrationApplications struct {
	UnreadOnly *bool  `json:"unread_only,omitempty" url:"unread_only,omitempty"`
	Page       *int64 `json:"page,omitempty" url:"page,omitempty"`
	Limit      *int64 `json:"limit,omitempty" url:"limit,omitempty"`
}

type ListRegistrationApplicationsResponse struct {
	RegistrationApplications []RegistrationApplicationView `json:"registration_applications"`
}

type ApproveRegistrationApplication struct {
	ID         RegistrationApplicationID `json:"id"`
	Approve    bool                      `json:"approve"`
	DenyReason *string                   `json:"deny_reason,omitempty"`
}

type RegistrationApplicationResponse struct {
	RegistrationApplication RegistrationApplicationView `json:"registration_application"`
}

type GetUnreadRegistrationApplicationCount struct{}

type GetUnreadRegistrationApplicationCountResponse struct {
	RegistrationApplications int64 `json:"registration_applications"`
}

// Admin purges

type PurgePerson struct {
	PersonID PersonID `json:"person_id"`
	Reason   *string  `json:"reason,omitempty"`
}

type PurgeCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	Reason      *string     `json:"reason,omitempty"`
}

type PurgePost struct {
	PostID PostID  `json:"post_id"`
	Reason *string `json:"reason,omitempty"`
}

type PurgeComment struct {
	CommentID CommentID `json:"comment_id"`
	Reason    *string   `json:"reason,omitempty"`
}
