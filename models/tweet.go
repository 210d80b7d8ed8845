package models

import "time"

type Tweet struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	OwnerID   string    `gorm:"column:owner_id;type:char(36);not null;index:idx_tweet_owner_created,priority:1" json:"owner_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_tweet_owner_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}

func (t *Tweet) GetOwnerID() string { return t.OwnerID }
