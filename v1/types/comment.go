package types

import (
	"time"
)

type Comment struct {
	ID        CommentID  `json:"id"`
	CreatorID PersonID   `json:"creator_id"`
	PostID    PostID     `json:"post_id"`
	Content   string     `json:"content"`
	Removed   bool       `json:"removed"`
	Published time.Time  `json:"published"`
	Updated   *time.Time `json:"updated,omitempty"`
	Deleted   bool       `json:"deleted"`
	APID      string     `json:"ap_id"`
	Local     bool       `json:"local"`
	// Materialized path of ancestor comment ids, e.g. "0.104.242"
	Path          string     `json:"path"`
	Distinguished bool       `json:"distinguished"`
	LanguageID    LanguageID `json:"language_id"`
}

type CommentAggregates struct {
	CommentID  CommentID `json:"comment_id"`
	Score      int64     `json:"score"`
	Upvotes    int64     `json:"upvotes"`
	Downvotes  int64     `json:"downvotes"`
	Published  time.Time `json:"published"`
	ChildCount int       `json:"child_count"`
}

type CommentView struct {
	Comment                    Comment           `json:"comment"`
	Creator                    Person            `json:"creator"`
	Post                       Post              `json:"post"`
	Community                  Community         `json:"community"`
	Counts                     CommentAggregates `json:"counts"`
	CreatorBannedFromCommunity bool              `json:"creator_banned_from_community"`
	CreatorIsModerator         bool              `json:"creator_is_moderator"`
	CreatorIsAdmin             bool              `json:"creator_is_admin"`
	Subscribed                 SubscribedType    `json:"subscribed"`
	Saved                      bool              `json:"saved"`
	CreatorBlocked             bool              `json:"creator_blocked"`
	MyVote                     *int              `json:"my_vote,omitempty"`
}

type CreateComment struct {
	Content    string      `json:"content"`
	PostID     PostID      `json:"post_id"`
	ParentID   *CommentID  `json:"parent_id,omitempty"`
	LanguageID *LanguageID `json:"language_id,omitempty"`
}

type GetComment struct {
	ID CommentID `json:"id" url:"id"`
}

type EditComment struct {
	CommentID  CommentID   `json:"comment_id"`
	Content    *string     `json:"content,omitempty"`
	LanguageID *LanguageID `json:"language_id,omitempty"`
}

type DeleteComment struct {
	CommentID CommentID `json:"comment_id"`
	Deleted   bool      `json:"deleted"`
}

type RemoveComment struct {
	CommentID CommentID `json:"comment_id"`
	Removed   bool      `json:"removed"`
	Reason    *string   `json:"reason,omitempty"`
}

type DistinguishComment struct {
	CommentID     CommentID `json:"comment_id"`
	Distinguished bool      `json:"distinguished"`
}

type CreateCommentLike struct {
	CommentID CommentID `json:"comment_id"`
	Score     int       `json:"score"`
}

type ListCommentLikes struct {
	CommentID CommentID `json:"comment_id" url:"comment_id"`
	Page      *int64    `json:"page,omitempty" url:"page,omitempty"`
	Limit     *int64    `json:"limit,omitempty" url:"limit,omitempty"`
}

type ListCommentLikesResponse struct {
	CommentLikes []VoteView `json:"comment_likes"`
}

type SaveComment struct {
	CommentID CommentID `json:"comment_id"`
	Save      bool      `json:"save"`
}

type CommentResponse struct {
	CommentView  CommentView   `json:"comment_view"`
	RecipientIDs []LocalUserID `json:"recipient_ids"`
}

type GetComments struct {
	Type          *ListingType     `json:"type_,omitempty" url:"type_,omitempty"`
	Sort          *CommentSortType `json:"sort,omitempty" url:"sort,omitempty"`
	MaxDepth      *int             `json:"max_depth,omitempty" url:"max_depth,omitempty"`
	Page          *int64           `json:"page,omitempty" url:"page,omitempty"`
	Limit         *int64           `json:"limit,omitempty" url:"limit,omitempty"`
	CommunityID   *CommunityID     `json:"community_id,omitempty" url:"community_id,omitempty"`
	CommunityName *string          `json:"community_name,omitempty" url:"community_name,omitempty"`
	PostID        *PostID          `json:"post_id,omitempty" url:"post_id,omitempty"`
	ParentID      *CommentID       `json:"parent_id,omitempty" url:"parent_id,omitempty"`
	SavedOnly     *bool            `json:"saved_only,omitempty" url:"saved_only,omitempty"`
	LikedOnly     *bool            `json:"liked_only,omitempty" url:"liked_only,omitempty"`
	DislikedOnly  *bool            `json:"disliked_only,omitempty" url:"disliked_only,omitempty"`
}

type GetCommentsResponse struct {
	Comments []CommentView `json:"comments"`
}

type CreateCommentReport struct {
	CommentID CommentID `json:"comment_id"`
	Reason    string    `json:"reason"`
}

type CommentReport struct {
	ID                  CommentReportID `json:"id"`
	CreatorID           PersonID        `json:"creator_id"`
	CommentID           CommentID       `json:"comment_id"`
	OriginalCommentText string          `json:"original_comment_text"`
	Reason              string          `json:"reason"`
	Resolved            bool            `json:"resolved"`
	ResolverID          *PersonID       `json:"resolver_id,omitempty"`
	Published           time.Time       `json:"published"`
}

type CommentReportView struct {
	CommentReport  CommentReport     `json:"comment_report"`
	Comment        Comment           `json:"comment"`
	Post           Post              `json:"post"`
	Community      Community         `json:"community"`
	Creator        Person            `json:"creator"`
	CommentCreator Person            `json:"comment_creator"`
	Counts         CommentAggregates `json:"counts"`
	Resolver       *Person           `json:"resolver,omitempty"`
}

type CommentReportResponse struct {
	CommentReportView CommentReportView `json:"comment_report_view"`
}

type ResolveCommentReport struct {
	ReportID CommentReportID `json:"report_id"`
	Resolved bool            `json:"resolved"`
}

type ListCommentReports struct {
	Page           *int64       `json:"page,omitempty" url:"page,omitempty"`
	Limit          *int64       `json:"limit,omitempty" url:"limit,omitempty"`
	UnresolvedOnly *bool        `json:"unresolved_only,omitempty" url:"unresolved_only,omitempty"`
	CommunityID    *CommunityID `json:"community_id,omitempty" url:"community_id,omitempty"`
}

type ListCommentReportsResponse struct {
	CommentReports []CommentReportView `json:"comment_reports"`
}
