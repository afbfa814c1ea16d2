package types

import (
	"time"
)

type PrivateMessage struct {
	ID          PrivateMessageID `json:"id"`
	CreatorID   PersonID         `json:"creator_id"`
	RecipientID PersonID         `json:"recipient_id"`
	Content     string           `json:"content"`
	Deleted     bool             `json:"deleted"`
	Read        bool             `json:"read"`
	Published   time.Time        `json:"published"`
	Updated     *time.Time       `json:"updated,omitempty"`
	APID        string           `json:"ap_id"`
	Local       bool             `json:"local"`
}

type PrivateMessageView struct {
	PrivateMessage PrivateMessage `json:"private_message"`
	Creator        Person         `json:"creator"`
	Recipient      Person         `json:"recipient"`
}

type CreatePrivateMessage struct {
	Content     string   `json:"content"`
	RecipientID PersonID `json:"recipient_id"`
}

type EditPrivateMessage struct {
	PrivateMessageID PrivateMessageID `json:"private_message_id"`
	Content          string           `json:"content"`
}

type DeletePrivateMessage struct {
	PrivateMessageID PrivateMessageID `json:"private_message_id"`
	Deleted          bool             `json:"deleted"`
}

type MarkPrivateMessageAsRead struct {
	PrivateMessageID PrivateMessageID `json:"private_message_id"`
	Read             bool             `json:"read"`
}

type GetPrivateMessages struct {
	UnreadOnly *bool     `json:"unread_only,omitempty" url:"unread_only,omitempty"`
	Page       *int64    `json:"page,omitempty" url:"page,omitempty"`
	Limit      *int64    `json:"limit,omitempty" url:"limit,omitempty"`
	CreatorID  *PersonID `json:"creator_id,omitempty" url:"creator_id,omitempty"`
}

type PrivateMessagesResponse struct {
	PrivateMessages []PrivateMessageView `json:"private_messages"`
}

type PrivateMessageResponse struct {
	PrivateMessageView PrivateMessageView `json:"private_message_view"`
}

type CreatePrivateMessageReport struct {
	PrivateMessageID PrivateMessageID `json:"private_message_id"`
	Reason           string           `json:"reason"`
}

type PrivateMessageReport struct {
	ID               PrivateMessageReportID `json:"id"`
	CreatorID        PersonID               `json:"creator_id"`
	PrivateMessageID PrivateMessageID       `json:"private_message_id"`
	OriginalPMText   string                 `json:"original_pm_text"`
	Reason           string                 `json:"reason"`
	Resolved         bool                   `json:"resolved"`
	ResolverID       *PersonID              `json:"resolver_id,omitempty"`
	Published        time.Time              `json:"published"`
}

type PrivateMessageReportView struct {
	PrivateMessageReport  PrivateMessageReport `json:"private_message_report"`
	PrivateMessage        PrivateMessage       `json:"private_message"`
	PrivateMessageCreator Person               `json:"private_message_creator"`
	Creator               Person               `json:"creator"`
	Resolver              *Person              `json:"resolver,omitempty"`
}

type PrivateMessageReportResponse struct {
	PrivateMessageReportView PrivateMessageReportView `json:"private_message_report_view"`
}

type ResolvePrivateMessageReport struct {
	ReportID PrivateMessageReportID `json:"report_id"`
	Resolved bool                   `json:"resolved"`
}

type ListPrivateMessageReports struct {
	Page           *int64 `json:"page,omitempty" url:"page,omitempty"`
	Limit          *int64 `json:"limit,omitempty" url:"limit,omitempty"`
	UnresolvedOnly *bool  `json:"unresolved_only,omitempty" url:"unresolved_only,omitempty"`
}

type ListPrivateMessageReportsResponse struct {
	PrivateMessageReports []PrivateMessageReportView `json:"private_message_reports"`
}
