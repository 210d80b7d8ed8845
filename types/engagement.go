package types

import (
	"Vidhub/models"
	"time"
)

// ToggleResponse 开关操作结果，removed 时 relation 为空
type ToggleResponse struct {
	Outcome  string           `json:"outcome"`
	Relation *models.Relation `json:"relation,omitempty"`
}

type LikedVideo struct {
	LikedAt time.Time  `json:"liked_at"`
	Video   *VideoItem `json:"video"`
}

// SubscriptionItem 订阅关系中对端用户的资料
type SubscriptionItem struct {
	User         *UserProfile `json:"user"`
	SubscribedAt time.Time    `json:"subscribed_at"`
}
