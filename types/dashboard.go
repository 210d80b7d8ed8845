package types

// ChannelStats 频道统计，空频道全部为 0
type ChannelStats struct {
	VideoCount      int64 `json:"video_count"`
	TotalViews      int64 `json:"total_views"`
	SubscriberCount int64 `json:"subscriber_count"`
	TotalLikes      int64 `json:"total_likes"`
}
