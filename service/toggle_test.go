package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"Vidhub/internal/testdb"
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggle_RoundTrip(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")
	video := testdb.Video(t, s.db, alice.ID, "intro", 0, time.Time{})
	tweet := testdb.Tweet(t, s.db, alice.ID, "hi")
	comment := testdb.Comment(t, s.db, alice.ID, video.ID, "first")

	cases := []struct {
		kind   models.TargetKind
		target string
	}{
		{models.TargetVideo, video.ID},
		{models.TargetTweet, tweet.ID},
		{models.TargetComment, comment.ID},
		{models.TargetChannel, alice.ID},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			first, err := s.toggle.Toggle(ctx, bob.ID, tc.kind, tc.target)
			require.NoError(t, err)
			assert.Equal(t, ToggleCreated, first.Outcome)
			require.NotNil(t, first.Relation)
			assert.Equal(t, tc.target, first.Relation.TargetID)

			exists, err := s.toggle.RelationDAO.Exists(ctx, bob.ID, tc.kind, tc.target)
			require.NoError(t, err)
			assert.True(t, exists)

			second, err := s.toggle.Toggle(ctx, bob.ID, tc.kind, tc.target)
			require.NoError(t, err)
			assert.Equal(t, ToggleRemoved, second.Outcome)
			assert.Nil(t, second.Relation)

			exists, err = s.toggle.RelationDAO.Exists(ctx, bob.ID, tc.kind, tc.target)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}

	var events int64
	require.NoError(t, s.db.Model(&models.EngagementEvent{}).Count(&events).Error)
	assert.EqualValues(t, 8, events)
}

func TestToggle_Validation(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")

	_, err := s.toggle.Toggle(ctx, "", models.TargetVideo, ident.New())
	assert.ErrorIs(t, err, errno.ErrUnauthorized)

	_, err = s.toggle.Toggle(ctx, "not-an-id", models.TargetVideo, ident.New())
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	_, err = s.toggle.Toggle(ctx, alice.ID, models.TargetVideo, "123")
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	_, err = s.toggle.Toggle(ctx, alice.ID, models.TargetKind("playlist"), ident.New())
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
}

func TestToggle_SelfSubscriptionAlwaysRejected(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")

	_, err := s.toggle.Toggle(ctx, alice.ID, models.TargetChannel, alice.ID)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	// 即便库里已有一条自订阅记录，结果也不变
	require.NoError(t, s.db.Create(&models.Subscription{ID: ident.New(), SubscriberID: alice.ID, ChannelID: alice.ID}).Error)
	_, err = s.toggle.Toggle(ctx, alice.ID, models.TargetChannel, alice.ID)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	var count int64
	require.NoError(t, s.db.Model(&models.Subscription{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestToggle_RejectsNonCanonicalIDs(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	upper := strings.ToUpper(alice.ID)

	_, err := s.toggle.Toggle(ctx, alice.ID, models.TargetChannel, upper)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
	_, err = s.toggle.Toggle(ctx, upper, models.TargetChannel, alice.ID)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
	_, err = s.sub.ToggleSubscription(ctx, alice.ID, upper)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	var count int64
	require.NoError(t, s.db.Model(&models.Subscription{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestToggle_AbsorbsDuplicateOnCreate(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")
	video := testdb.Video(t, s.db, alice.ID, "intro", 0, time.Time{})
	racerID := ident.New()

	// 模拟并发请求在 Exists 与 Create 之间抢先插入
	raced := false
	require.NoError(t, s.db.Callback().Create().Before("gorm:create").Register("test:race", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "likes" {
			return
		}
		raced = true
		tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO likes (id, user_id, target_kind, target_id, created_at) VALUES (?, ?, ?, ?, ?)",
			racerID, bob.ID, models.TargetVideo, video.ID, time.Now(),
		)
	}))

	result, err := s.toggle.Toggle(ctx, bob.ID, models.TargetVideo, video.ID)
	require.NoError(t, err)
	assert.Equal(t, ToggleCreated, result.Outcome)
	require.NotNil(t, result.Relation)
	assert.Equal(t, racerID, result.Relation.ID)

	var count int64
	require.NoError(t, s.db.Model(&models.Like{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestToggle_AbsorbsMissingOnDelete(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")

	_, err := s.toggle.Toggle(ctx, bob.ID, models.TargetChannel, alice.ID)
	require.NoError(t, err)

	raced := false
	require.NoError(t, s.db.Callback().Delete().Before("gorm:delete").Register("test:race", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "subscriptions" {
			return
		}
		raced = true
		tx.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM subscriptions")
	}))

	result, err := s.toggle.Toggle(ctx, bob.ID, models.TargetChannel, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, ToggleRemoved, result.Outcome)
}

func TestToggle_ConcurrentNeverDuplicates(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")
	video := testdb.Video(t, s.db, alice.ID, "intro", 0, time.Time{})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.toggle.Toggle(ctx, bob.ID, models.TargetVideo, video.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("toggle failed: %v", err)
	}

	var count int64
	require.NoError(t, s.db.Model(&models.Like{}).Count(&count).Error)
	assert.LessOrEqual(t, count, int64(1))
}

type stubLocker struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (l *stubLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys = append(l.keys, key)
	if l.err != nil {
		return nil, l.err
	}
	return func() {}, nil
}

func TestToggle_UsesLocker(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")

	locker := &stubLocker{}
	s.toggle.Locker = locker
	_, err := s.toggle.Toggle(ctx, bob.ID, models.TargetChannel, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"lock:toggle:channel:" + bob.ID + ":" + alice.ID}, locker.keys)

	// 锁不可用时仍由唯一索引兜底
	locker.err = errors.New("redis down")
	result, err := s.toggle.Toggle(ctx, bob.ID, models.TargetChannel, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, ToggleRemoved, result.Outcome)
}
