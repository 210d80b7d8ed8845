package models

import "time"

// Comment 视频评论，评论的增删改由评论服务负责，这里只用于点赞目标校验
type Comment struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	OwnerID   string    `gorm:"column:owner_id;type:char(36);not null" json:"owner_id"`
	VideoID   string    `gorm:"column:video_id;type:char(36);not null;index" json:"video_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
