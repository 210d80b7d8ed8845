package models

import "time"

// TargetKind 关系目标类型
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
	// TargetChannel 订阅，目标是频道（用户）
	TargetChannel TargetKind = "channel"
)

func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet, TargetChannel:
		return true
	}
	return false
}

// Relation likes / subscriptions 的统一视图
type Relation struct {
	ID        string     `json:"id"`
	ActorID   string     `json:"actor_id"`
	Kind      TargetKind `json:"kind"`
	TargetID  string     `json:"target_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// Like 点赞记录
// 对应表 likes
// 唯一键: user_id + target_kind + target_id
type Like struct {
	ID         string     `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID     string     `gorm:"column:user_id;type:char(36);not null;uniqueIndex:uk_user_target,priority:1" json:"user_id"`
	TargetKind TargetKind `gorm:"column:target_kind;type:varchar(16);not null;uniqueIndex:uk_user_target,priority:2;index:idx_target,priority:1" json:"target_kind"`
	TargetID   string     `gorm:"column:target_id;type:char(36);not null;uniqueIndex:uk_user_target,priority:3;index:idx_target,priority:2" json:"target_id"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }

func (l *Like) Relation() *Relation {
	return &Relation{ID: l.ID, ActorID: l.UserID, Kind: l.TargetKind, TargetID: l.TargetID, CreatedAt: l.CreatedAt}
}

// Subscription 订阅记录
// 唯一键: subscriber_id + channel_id
type Subscription struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	SubscriberID string    `gorm:"column:subscriber_id;type:char(36);not null;uniqueIndex:uk_subscriber_channel,priority:1" json:"subscriber_id"`
	ChannelID    string    `gorm:"column:channel_id;type:char(36);not null;uniqueIndex:uk_subscriber_channel,priority:2;index" json:"channel_id"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) Relation() *Relation {
	return &Relation{ID: s.ID, ActorID: s.SubscriberID, Kind: TargetChannel, TargetID: s.ChannelID, CreatedAt: s.CreatedAt}
}
