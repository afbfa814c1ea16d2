// Package types defines the request and response shapes of the Lemmy HTTP
// API, v3. The definitions track the upstream contract for the 0.19 line and
// carry no behavior of their own; optional members are pointers and omitted
// from serialization when unset. Forms used with GET endpoints additionally
// carry url tags for query-string encoding.
package types

// Identifiers are distinct types so that, say, a post id cannot be passed
// where a comment id is expected.
type (
	PostID                    int
	CommentID                 int
	CommunityID               int
	PersonID                  int
	PrivateMessageID          int
	LanguageID                int
	CustomEmojiID             int
	InstanceID                int
	LocalUserID               int
	PostReportID              int
	CommentReportID           int
	PrivateMessageReportID    int
	RegistrationApplicationID int
)

// An opaque page cursor returned by list endpoints, fed back verbatim to
// fetch the following page
type PaginationCursor string

type ListingType string

const (
	ListingAll           ListingType = "All"
	ListingLocal         ListingType = "Local"
	ListingSubscribed    ListingType = "Subscribed"
	ListingModeratorView ListingType = "ModeratorView"
)

type SortType string

const (
	SortActive         SortType = "Active"
	SortHot            SortType = "Hot"
	SortNew            SortType = "New"
	SortOld            SortType = "Old"
	SortTopDay         SortType = "TopDay"
	SortTopWeek        SortType = "TopWeek"
	SortTopMonth       SortType = "TopMonth"
	SortTopYear        SortType = "TopYear"
	SortTopAll         SortType = "TopAll"
	SortMostComments   SortType = "MostComments"
	SortNewComments    SortType = "NewComments"
	SortTopHour        SortType = "TopHour"
	SortTopSixHour     SortType = "TopSixHour"
	SortTopTwelveHour  SortType = "TopTwelveHour"
	SortTopThreeMonths SortType = "TopThreeMonths"
	SortTopSixMonths   SortType = "TopSixMonths"
	SortTopNineMonths  SortType = "TopNineMonths"
	SortControversial  SortType = "Controversial"
	SortScaled         SortType = "Scaled"
)

type CommentSortType string

const (
	CommentSortHot           CommentSortType = "Hot"
	CommentSortTop           CommentSortType = "Top"
	CommentSortNew           CommentSortType = "New"
	CommentSortOld           CommentSortType = "Old"
	CommentSortControversial CommentSortType = "Controversial"
)

type SearchType string

const (
	SearchAll         SearchType = "All"
	SearchComments    SearchType = "Comments"
	SearchPosts       SearchType = "Posts"
	SearchCommunities SearchType = "Communities"
	SearchUsers       SearchType = "Users"
	SearchURL         SearchType = "Url"
)

type SubscribedType string

const (
	Subscribed       SubscribedType = "Subscribed"
	NotSubscribed    SubscribedType = "NotSubscribed"
	SubscribePending SubscribedType = "Pending"
)

type RegistrationMode string

const (
	RegistrationClosed             RegistrationMode = "Closed"
	RegistrationRequireApplication RegistrationMode = "RequireApplication"
	RegistrationOpen               RegistrationMode = "Open"
)

type PostFeatureType string

const (
	FeatureLocal     PostFeatureType = "Local"
	FeatureCommunity PostFeatureType = "Community"
)

// Returned by operations that acknowledge without a payload of their own
type SuccessResponse struct {
	Success bool `json:"success"`
}
