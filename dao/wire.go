package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewVideoDAO,
	NewTweetDAO,
	NewPlaylistDAO,
	NewCommentDAO,
	NewRelationDAO,
	NewEventDAO,
)
