package types

import (
	"time"
)

type CustomEmoji struct {
	ID          CustomEmojiID `json:"id"`
	LocalSiteID int           `json:"local_site_id"`
	Shortcode   string        `json:"shortcode"`
	ImageURL    string        `json:"image_url"`
	AltText     string        `json:"alt_text"`
	Category    string        `json:"category"`
	Published   time.Time     `json:"published"`
	Updated     *time.Time    `json:"updated,omitempty"`
}

type CustomEmojiKeyword struct {
	CustomEmojiID CustomEmojiID `json:"custom_emoji_id"`
	Keyword       string        `json:"keyword"`
}

type CustomEmojiView struct {
	CustomEmoji CustomEmoji          `json:"custom_emoji"`
	Keywords    []CustomEmojiKeyword `json:"keywords"`
}

type CreateCustomEmoji struct {
	Category  string   `json:"category"`
	Shortcode string   `json:"shortcode"`
	ImageURL  string   `json:"image_url"`
	AltText   string   `json:"alt_text"`
	Keywords  []string `json:"keywords"`
}

type EditCustomEmoji struct {
	ID       CustomEmojiID `json:"id"`
	Category string        `json:"category"`
	ImageURL string        `json:"image_url"`
	AltText  string        `json:"alt_text"`
	Keywords []string      `json:"keywords"`
}

type DeleteCustomEmoji struct {
	ID CustomEmojiID `json:"id"`
}

type CustomEmojiResponse struct {
	CustomEmoji CustomEmojiView `json:"custom_emoji"`
}
