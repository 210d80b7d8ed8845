package models

import (
	"time"

	"gorm.io/datatypes"
)

// EngagementEvent 互动/内容变更审计日志，只追加不修改
type EngagementEvent struct {
	ID         string         `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ActorID    string         `gorm:"column:actor_id;type:char(36);not null;index" json:"actor_id"`
	Action     string         `gorm:"column:action;type:varchar(32);not null" json:"action"`
	TargetKind string         `gorm:"column:target_kind;type:varchar(16);not null" json:"target_kind"`
	TargetID   string         `gorm:"column:target_id;type:char(36);not null;index" json:"target_id"`
	Payload    datatypes.JSON `gorm:"column:payload" json:"payload"`
	CreatedAt  time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (EngagementEvent) TableName() string {
	return "engagement_events"
}

// All 需要迁移的表
func All() []any {
	return []any{
		&User{},
		&Video{},
		&Tweet{},
		&Playlist{},
		&PlaylistVideo{},
		&Comment{},
		&Like{},
		&Subscription{},
		&EngagementEvent{},
	}
}
