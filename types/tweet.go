package types

import (
	"Vidhub/models"
	"time"
)

type CreateTweetRequest struct {
	Content string `json:"content"`
}

// UpdateTweetRequest content 为空时不做修改
type UpdateTweetRequest struct {
	Content *string `json:"content"`
}

type TweetItem struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	Owner     *UserProfile `json:"owner"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewTweetItem(t *models.Tweet, owner *models.User) *TweetItem {
	item := &TweetItem{
		ID:        t.ID,
		Content:   t.Content,
		Owner:     NewUserProfile(owner),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if item.Owner == nil {
		item.Owner = &UserProfile{ID: t.OwnerID}
	}
	return item
}
