package models

import "time"

type Video struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	OwnerID      string    `gorm:"column:owner_id;type:char(36);not null;index:idx_video_owner_created,priority:1" json:"owner_id"`
	Title        string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	VideoURL     string    `gorm:"column:video_url;type:varchar(512);not null" json:"video_url"`
	VideoKey     string    `gorm:"column:video_key;type:varchar(255);not null" json:"-"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;type:varchar(512);not null;default:''" json:"thumbnail_url"`
	ThumbnailKey string    `gorm:"column:thumbnail_key;type:varchar(255);not null;default:''" json:"-"`
	Duration     int       `gorm:"column:duration;not null;default:0" json:"duration"` // 秒
	Views        int64     `gorm:"column:views;not null;default:0" json:"views"`
	IsPublished  bool      `gorm:"column:is_published;not null" json:"is_published"`
	CreatedAt    time.Time `gorm:"column:created_at;index:idx_video_owner_created,priority:2" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) GetOwnerID() string { return v.OwnerID }
