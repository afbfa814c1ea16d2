package types

import (
	"time"
)

type Post struct {
	ID                PostID      `json:"id"`
	Name              string      `json:"name"`
	URL               *string     `json:"url,omitempty"`
	Body              *string     `json:"body,omitempty"`
	CreatorID         PersonID    `json:"creator_id"`
	CommunityID       CommunityID `json:"community_id"`
	Removed           bool        `json:"removed"`
	Locked            bool        `json:"locked"`
	Published         time.Time   `json:"published"`
	Updated           *time.Time  `json:"updated,omitempty"`
	Deleted           bool        `json:"deleted"`
	NSFW              bool        `json:"nsfw"`
	EmbedTitle        *string     `json:"embed_title,omitempty"`
	EmbedDescription  *string     `json:"embed_description,omitempty"`
	EmbedVideoURL     *string     `json:"embed_video_url,omitempty"`
	ThumbnailURL      *string     `json:"thumbnail_url,omitempty"`
	APID              string      `json:"ap_id"`
	Local             bool        `json:"local"`
	LanguageID        LanguageID  `json:"language_id"`
	FeaturedCommunity bool        `json:"featured_community"`
	FeaturedLocal     bool        `json:"featured_local"`
}

type PostAggregates struct {
	PostID            PostID    `json:"post_id"`
	Comments          int64     `json:"comments"`
	Score             int64     `json:"score"`
	Upvotes           int64     `json:"upvotes"`
	Downvotes         int64     `json:"downvotes"`
	Published         time.Time `json:"published"`
	NewestCommentTime time.Time `json:"newest_comment_time"`
}

type PostView struct {
	Post                       Post           `json:"post"`
	Creator                    Person         `json:"creator"`
	Community                  Community      `json:"community"`
	ImageDetails               *ImageDetails  `json:"image_details,omitempty"`
	CreatorBannedFromCommunity bool           `json:"creator_banned_from_community"`
	CreatorIsModerator         bool           `json:"creator_is_moderator"`
	CreatorIsAdmin             bool           `json:"creator_is_admin"`
	Counts                     PostAggregates `json:"counts"`
	Subscribed                 SubscribedType `json:"subscribed"`
	Saved                      bool           `json:"saved"`
	Read                       bool           `json:"read"`
	Hidden                     bool           `json:"hidden"`
	CreatorBlocked             bool           `json:"creator_blocked"`
	MyVote                     *int           `json:"my_vote,omitempty"`
	UnreadComments             int64          `json:"unread_comments"`
}

type ImageDetails struct {
	Link        string `json:"link"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"content_type"`
}

type CreatePost struct {
	Name            string      `json:"name"`
	CommunityID     CommunityID `json:"community_id"`
	URL             *string     `json:"url,omitempty"`
	Body            *string     `json:"body,omitempty"`
	AltText         *string     `json:"alt_text,omitempty"`
	Honeypot        *string     `json:"honeypot,omitempty"`
	NSFW            *bool       `json:"nsfw,omitempty"`
	LanguageID      *LanguageID `json:"language_id,omitempty"`
	CustomThumbnail *string     `json:"custom_thumbnail,omitempty"`
}

type GetPost struct {
	ID        *PostID    `json:"id,omitempty" url:"id,omitempty"`
	CommentID *CommentID `json:"comment_id,omitempty" url:"comment_id,omitempty"`
}

type GetPostResponse struct {
	PostView      PostView                 `json:"post_view"`
	CommunityView CommunityView            `json:"community_view"`
	Moderators    []CommunityModeratorView `json:"moderators"`
	CrossPosts    []PostView               `json:"cross_posts"`
}

type EditPost struct {
	PostID          PostID      `json:"post_id"`
	Name            *string     `json:"name,omitempty"`
	URL             *string     `json:"url,omitempty"`
	Body            *string     `json:"body,omitempty"`
	AltText         *string     `json:"alt_text,omitempty"`
	NSFW            *bool       `json:"nsfw,omitempty"`
	LanguageID      *LanguageID `json:"language_id,omitempty"`
	CustomThumbnail *string     `json:"custom_thumbnail,omitempty"`
}

type DeletePost struct {
	PostID  PostID `json:"post_id"`
	Deleted bool   `json:"deleted"`
}

type RemovePost struct {
	PostID  PostID  `json:"post_id"`
	Removed bool    `json:"removed"`
	Reason  *string `json:"reason,omitempty"`
}

type MarkPostAsRead struct {
	PostIDs []PostID `json:"post_ids"`
	Read    bool     `json:"read"`
}

type HidePost struct {
	PostIDs []PostID `json:"post_ids"`
	Hide    bool     `json:"hide"`
}

type LockPost struct {
	PostID PostID `json:"post_id"`
	Locked bool   `json:"locked"`
}

type FeaturePost struct {
	PostID      PostID          `json:"post_id"`
	Featured    bool            `json:"featured"`
	FeatureType PostFeatureType `json:"feature_type"`
}

type GetPosts struct {
	Type          *ListingType      `json:"type_,omitempty" url:"type_,omitempty"`
	Sort          *SortType         `json:"sort,omitempty" url:"sort,omitempty"`
	Page          *int64            `json:"page,omitempty" url:"page,omitempty"`
	Limit         *int64            `json:"limit,omitempty" url:"limit,omitempty"`
	CommunityID   *CommunityID      `json:"community_id,omitempty" url:"community_id,omitempty"`
	CommunityName *string           `json:"community_name,omitempty" url:"community_name,omitempty"`
	SavedOnly     *bool             `json:"saved_only,omitempty" url:"saved_only,omitempty"`
	LikedOnly     *bool             `json:"liked_only,omitempty" url:"liked_only,omitempty"`
	DislikedOnly  *bool             `json:"disliked_only,omitempty" url:"disliked_only,omitempty"`
	ShowHidden    *bool             `json:"show_hidden,omitempty" url:"show_hidden,omitempty"`
	PageCursor    *PaginationCursor `json:"page_cursor,omitempty" url:"page_cursor,omitempty"`
}

type GetPostsResponse struct {
	Posts    []PostView        `json:"posts"`
	NextPage *PaginationCursor `json:"next_page,omitempty"`
}

type CreatePostLike struct {
	PostID PostID `json:"post_id"`
	Score  int    `json:"score"`
}

type ListPostLikes struct {
	PostID PostID `json:"post_id" url:"post_id"`
	Page   *int64 `json:"page,omitempty" url:"page,omitempty"`
	Limit  *int64 `json:"limit,omitempty" url:"limit,omitempty"`
}

type VoteView struct {
	Creator Person `json:"creator"`
	Score   int    `json:"score"`
}

type ListPostLikesResponse struct {
	PostLikes []VoteView `json:"post_likes"`
}

type SavePost struct {
	PostID PostID `json:"post_id"`
	Save   bool   `json:"save"`
}

type PostResponse struct {
	PostView PostView `json:"post_view"`
}

type CreatePostReport struct {
	PostID PostID `json:"post_id"`
	Reason string `json:"reason"`
}

type PostReport struct {
	ID               PostReportID `json:"id"`
	CreatorID        PersonID     `json:"creator_id"`
	PostID           PostID       `json:"post_id"`
	OriginalPostName string       `json:"original_post_name"`
	Reason           string       `json:"reason"`
	Resolved         bool         `json:"resolved"`
	ResolverID       *PersonID    `json:"resolver_id,omitempty"`
	Published        time.Time    `json:"published"`
}

type PostReportView struct {
	PostReport  PostReport     `json:"post_report"`
	Post        Post           `json:"post"`
	Community   Community      `json:"community"`
	Creator     Person         `json:"creator"`
	PostCreator Person         `json:"post_creator"`
	Counts      PostAggregates `json:"counts"`
	Resolver    *Person        `json:"resolver,omitempty"`
}

type PostReportResponse struct {
	PostReportView PostReportView `json:"post_report_view"`
}

type ResolvePostReport struct {
	ReportID PostReportID `json:"report_id"`
	Resolved bool         `json:"resolved"`
}

type ListPostReports struct {
	Page           *int64       `json:"page,omitempty" url:"page,omitempty"`
	Limit          *int64       `json:"limit,omitempty" url:"limit,omitempty"`
	UnresolvedOnly *bool        `json:"unresolved_only,omitempty" url:"unresolved_only,omitempty"`
	CommunityID    *CommunityID `json:"community_id,omitempty" url:"community_id,omitempty"`
}

type ListPostReportsResponse struct {
	PostReports []PostReportView `json:"post_reports"`
}

type GetSiteMetadata struct {
	URL string `json:"url" url:"url"`
}

type LinkMetadata struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Image         *string `json:"image,omitempty"`
	EmbedVideoURL *string `json:"embed_video_url,omitempty"`
	ContentType   *string `json:"content_type,omitempty"`
}

type GetSiteMetadataResponse struct {
	Metadata LinkMetadata `json:"metadata"`
}
