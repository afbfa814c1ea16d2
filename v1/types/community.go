package types

import (
	"time"
)

type Community struct {
	ID                      CommunityID `json:"id"`
	Name                    string      `json:"name"`
	Title                   string      `json:"title"`
	Description             *string     `json:"description,omitempty"`
	Removed                 bool        `json:"removed"`
	Published               time.Time   `json:"published"`
	Updated                 *time.Time  `json:"updated,omitempty"`
	Deleted                 bool        `json:"deleted"`
	NSFW                    bool        `json:"nsfw"`
	ActorID                 string      `json:"actor_id"`
	Local                   bool        `json:"local"`
	Icon                    *string     `json:"icon,omitempty"`
	Banner                  *string     `json:"banner,omitempty"`
	Hidden                  bool        `json:"hidden"`
	PostingRestrictedToMods bool        `json:"posting_restricted_to_mods"`
	InstanceID              InstanceID  `json:"instance_id"`
}

type CommunityAggregates struct {
	CommunityID         CommunityID `json:"community_id"`
	Subscribers         int64       `json:"subscribers"`
	Posts               int64       `json:"posts"`
	Comments            int64       `json:"comments"`
	UsersActiveDay      int64       `json:"users_active_day"`
	UsersActiveWeek     int64       `json:"users_active_week"`
	UsersActiveMonth    int64       `json:"users_active_month"`
	UsersActiveHalfYear int64       `json:"users_active_half_year"`
	SubscribersLocal    int64       `json:"subscribers_local"`
}

type CommunityView struct {
	Community  Community           `json:"community"`
	Subscribed SubscribedType      `json:"subscribed"`
	Blocked    bool                `json:"blocked"`
	Counts     CommunityAggregates `json:"counts"`
}

type CommunityModeratorView struct {
	Community Community `json:"community"`
	Moderator Person    `json:"moderator"`
}

type GetCommunity struct {
	ID   *CommunityID `json:"id,omitempty" url:"id,omitempty"`
	Name *string      `json:"name,omitempty" url:"name,omitempty"`
}

type GetCommunityResponse struct {
	CommunityView       CommunityView            `json:"community_view"`
	Site                *Site                    `json:"site,omitempty"`
	Moderators          []CommunityModeratorView `json:"moderators"`
	DiscussionLanguages []LanguageID             `json:"discussion_languages"`
}

type CreateCommunity struct {
	Name                    string       `json:"name"`
	Title                   string       `json:"title"`
	Description             *string      `json:"description,omitempty"`
	Icon                    *string      `json:"icon,omitempty"`
	Banner                  *string      `json:"banner,omitempty"`
	NSFW                    *bool        `json:"nsfw,omitempty"`
	PostingRestrictedToMods *bool        `json:"posting_restricted_to_mods,omitempty"`
	DiscussionLanguages     []LanguageID `json:"discussion_languages,omitempty"`
}

type EditCommunity struct {
	CommunityID             CommunityID  `json:"community_id"`
	Title                   *string      `json:"title,omitempty"`
	Description             *string      `json:"description,omitempty"`
	Icon                    *string      `json:"icon,omitempty"`
	Banner                  *string      `json:"banner,omitempty"`
	NSFW                    *bool        `json:"nsfw,omitempty"`
	PostingRestrictedToMods *bool        `json:"posting_restricted_to_mods,omitempty"`
	DiscussionLanguages     []LanguageID `json:"discussion_languages,omitempty"`
}

type CommunityResponse struct {
	CommunityView       CommunityView `json:"community_view"`
	DiscussionLanguages []LanguageID  `json:"discussion_languages"`
}

type ListCommunities struct {
	Type     *ListingType `json:"type_,omitempty" url:"type_,omitempty"`
	Sort     *SortType    `json:"sort,omitempty" url:"sort,omitempty"`
	ShowNSFW *bool        `json:"show_nsfw,omitempty" url:"show_nsfw,omitempty"`
	Page     *int64       `json:"page,omitempty" url:"page,omitempty"`
	Limit    *int64       `json:"limit,omitempty" url:"limit,omitempty"`
}

type ListCommunitiesResponse struct {
	Communities []CommunityView `json:"communities"`
}

type FollowCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	Follow      bool        `json:"follow"`
}

type BlockCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	Block       bool        `json:"block"`
}

type BlockCommunityResponse struct {
	CommunityView CommunityView `json:"community_view"`
	Blocked       bool          `json:"blocked"`
}

type DeleteCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	Deleted     bool        `json:"deleted"`
}

type HideCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	Hidden      bool        `json:"hidden"`
	Reason      *string     `json:"reason,omitempty"`
}

type RemoveCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	Removed     bool        `json:"removed"`
	Reason      *string     `json:"reason,omitempty"`
}

type TransferCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	PersonID    PersonID    `json:"person_id"`
}

type BanFromCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	PersonID    PersonID    `json:"person_id"`
	Ban         bool        `json:"ban"`
	RemoveData  *bool       `json:"remove_data,omitempty"`
	Reason      *string     `json:"reason,omitempty"`
	Expires     *int64      `json:"expires,omitempty"`
}

type BanFromCommunityResponse struct {
	PersonView PersonView `json:"person_view"`
	Banned     bool       `json:"banned"`
}

type AddModToCommunity struct {
	CommunityID CommunityID `json:"community_id"`
	PersonID    PersonID    `json:"person_id"`
	Added       bool        `json:"added"`
}

type AddModToCommunityResponse struct {
	Moderators []CommunityModeratorView `json:"moderators"`
}
