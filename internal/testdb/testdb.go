// Package testdb 为 dao/service 测试提供内存 SQLite 数据库
package testdb

import (
	"testing"
	"time"

	"Vidhub/models"
	"Vidhub/pkg/ident"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New 每个测试一个独立的内存库，单连接保证所有查询看到同一份数据
func New(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// User 插入一个用户
func User(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{ID: ident.New(), Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Video 插入一个已发布视频，createdAt 为零值时使用当前时间
func Video(t *testing.T, db *gorm.DB, ownerID, title string, views int64, createdAt time.Time) *models.Video {
	t.Helper()
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	v := &models.Video{
		ID:          ident.New(),
		OwnerID:     ownerID,
		Title:       title,
		VideoURL:    "https://cdn.example.com/videos/" + title + ".mp4",
		VideoKey:    "videos/" + title + ".mp4",
		Views:       views,
		IsPublished: true,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func Tweet(t *testing.T, db *gorm.DB, ownerID, content string) *models.Tweet {
	t.Helper()
	tw := &models.Tweet{ID: ident.New(), OwnerID: ownerID, Content: content}
	require.NoError(t, db.Create(tw).Error)
	return tw
}

func Comment(t *testing.T, db *gorm.DB, ownerID, videoID, content string) *models.Comment {
	t.Helper()
	c := &models.Comment{ID: ident.New(), OwnerID: ownerID, VideoID: videoID, Content: content}
	require.NoError(t, db.Create(c).Error)
	return c
}
