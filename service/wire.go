package service

import (
	"Vidhub/dao/cache"
	"Vidhub/pkg/rocketmq"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(EventRecorder), "*"),
	wire.Bind(new(IEventRecorder), new(*EventRecorder)),
	wire.Bind(new(IEventPublisher), new(*rocketmq.Publisher)),

	wire.Struct(new(ToggleEngine), "*"),
	wire.Bind(new(ILocker), new(*cache.ToggleLock)),

	NewAssetStore,

	wire.Struct(new(VideoService), "*"),
	wire.Bind(new(IVideoService), new(*VideoService)),

	wire.Struct(new(TweetService), "*"),
	wire.Bind(new(ITweetService), new(*TweetService)),

	wire.Struct(new(PlaylistService), "*"),
	wire.Bind(new(IPlaylistService), new(*PlaylistService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(DashboardService), "*"),
	wire.Bind(new(IDashboardService), new(*DashboardService)),
)
