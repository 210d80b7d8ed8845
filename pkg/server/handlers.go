package server

import (
	"Vidhub/handler"
)

type Handlers struct {
	Video        *handler.VideoHandler
	Tweet        *handler.TweetHandler
	Playlist     *handler.PlaylistHandler
	Like         *handler.LikeHandler
	Subscription *handler.SubscriptionHandler
	Dashboard    *handler.DashboardHandler
}
