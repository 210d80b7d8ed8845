//go:build wireinject
// +build wireinject

package main

import (
	"Vidhub/config"
	"Vidhub/dao"
	"Vidhub/dao/cache"
	"Vidhub/handler"
	"Vidhub/pkg/client"
	"Vidhub/pkg/database"
	"Vidhub/pkg/rocketmq"
	"Vidhub/pkg/server"
	"Vidhub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		rocketmq.NewPublisher,
		server.NewGinEngine,

		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.VideoHandler), "*"),
		wire.Struct(new(handler.TweetHandler), "*"),
		wire.Struct(new(handler.PlaylistHandler), "*"),
		wire.Struct(new(handler.LikeHandler), "*"),
		wire.Struct(new(handler.SubscriptionHandler), "*"),
		wire.Struct(new(handler.DashboardHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil, nil
}
