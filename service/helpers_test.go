package service

import (
	"context"
	"sync"
	"testing"

	"Vidhub/dao"
	"Vidhub/internal/testdb"

	"gorm.io/gorm"
)

// fakeAssets 记录存取过的对象 key
type fakeAssets struct {
	mu      sync.Mutex
	stored  []string
	removed []string
	failOn  string
}

func (f *fakeAssets) Store(_ context.Context, localPath, category string) (*StoredAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category == f.failOn {
		return nil, context.DeadlineExceeded
	}
	key := category + "/" + localPath
	f.stored = append(f.stored, key)
	return &StoredAsset{URL: "https://cdn.example.com/" + key, Key: key}, nil
}

func (f *fakeAssets) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, key)
	return nil
}

type suite struct {
	db        *gorm.DB
	assets    *fakeAssets
	events    *EventRecorder
	toggle    *ToggleEngine
	video     *VideoService
	tweet     *TweetService
	playlist  *PlaylistService
	like      *LikeService
	sub       *SubscriptionService
	dashboard *DashboardService
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	db := testdb.New(t)
	users := dao.NewUsers(db)
	videos := dao.NewVideoDAO(db)
	tweets := dao.NewTweetDAO(db)
	relations := dao.NewRelationDAO(db)
	assets := &fakeAssets{}
	events := &EventRecorder{EventDAO: dao.NewEventDAO(db)}
	toggle := &ToggleEngine{RelationDAO: relations, Events: events}

	return &suite{
		db:     db,
		assets: assets,
		events: events,
		toggle: toggle,
		video:  &VideoService{VideoDAO: videos, UserDAO: users, Assets: assets, Events: events},
		tweet:  &TweetService{TweetDAO: tweets, UserDAO: users, Events: events},
		playlist: &PlaylistService{
			PlaylistDAO: dao.NewPlaylistDAO(db),
			VideoDAO:    videos,
			UserDAO:     users,
		},
		like: &LikeService{
			Toggle:      toggle,
			RelationDAO: relations,
			VideoDAO:    videos,
			CommentDAO:  dao.NewCommentDAO(db),
			TweetDAO:    tweets,
			UserDAO:     users,
		},
		sub:       &SubscriptionService{Toggle: toggle, RelationDAO: relations, UserDAO: users},
		dashboard: &DashboardService{VideoDAO: videos, RelationDAO: relations, UserDAO: users},
	}
}
