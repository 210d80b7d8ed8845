package service

import (
	"context"
	"testing"
	"time"

	"Vidhub/internal/testdb"
	"Vidhub/pkg/errno"
	"Vidhub/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeScenario_StatsFollowToggles(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")
	video := testdb.Video(t, s.db, alice.ID, "intro", 0, time.Time{})

	result, err := s.like.ToggleVideoLike(ctx, bob.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, ToggleCreated, result.Outcome)

	stats, err := s.dashboard.ChannelStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalLikes)

	result, err = s.like.ToggleVideoLike(ctx, bob.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, ToggleRemoved, result.Outcome)

	stats, err = s.dashboard.ChannelStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalLikes)
}

func TestLike_TargetMustExist(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	bob := testdb.User(t, s.db, "bob")
	missing := ident.New()

	_, err := s.like.ToggleVideoLike(ctx, bob.ID, missing)
	assert.ErrorIs(t, err, errno.ErrNotFound)
	_, err = s.like.ToggleCommentLike(ctx, bob.ID, missing)
	assert.ErrorIs(t, err, errno.ErrNotFound)
	_, err = s.like.ToggleTweetLike(ctx, bob.ID, missing)
	assert.ErrorIs(t, err, errno.ErrNotFound)

	_, err = s.like.ToggleTweetLike(ctx, bob.ID, "bad")
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
	_, err = s.like.ToggleTweetLike(ctx, "", missing)
	assert.ErrorIs(t, err, errno.ErrUnauthorized)
}

func TestLike_LikedVideos(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")
	v1 := testdb.Video(t, s.db, alice.ID, "one", 0, time.Time{})
	v2 := testdb.Video(t, s.db, alice.ID, "two", 0, time.Time{})

	_, err := s.like.ToggleVideoLike(ctx, bob.ID, v1.ID)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = s.like.ToggleVideoLike(ctx, bob.ID, v2.ID)
	require.NoError(t, err)

	liked, err := s.like.LikedVideos(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, liked, 2)
	assert.Equal(t, v2.ID, liked[0].Video.ID)
	assert.Equal(t, "alice", liked[0].Video.Owner.Username)

	none, err := s.like.LikedVideos(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSubscription(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")
	bob := testdb.User(t, s.db, "bob")
	carol := testdb.User(t, s.db, "carol")

	_, err := s.sub.ToggleSubscription(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)

	_, err = s.sub.ToggleSubscription(ctx, alice.ID, ident.New())
	assert.ErrorIs(t, err, errno.ErrNotFound)

	for _, u := range []string{bob.ID, carol.ID} {
		result, err := s.sub.ToggleSubscription(ctx, u, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, ToggleCreated, result.Outcome)
	}

	subscribers, err := s.sub.ChannelSubscribers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, subscribers, 2)
	names := []string{subscribers[0].User.Username, subscribers[1].User.Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	channels, err := s.sub.SubscribedChannels(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, alice.ID, channels[0].User.ID)

	stats, err := s.dashboard.ChannelStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.SubscriberCount)

	result, err := s.sub.ToggleSubscription(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, ToggleRemoved, result.Outcome)

	subscribers, err = s.sub.ChannelSubscribers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, subscribers, 1)
}

func TestDashboard(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	alice := testdb.User(t, s.db, "alice")

	stats, err := s.dashboard.ChannelStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, *stats)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	old := testdb.Video(t, s.db, alice.ID, "old", 4, base)
	mid := testdb.Video(t, s.db, alice.ID, "mid", 6, base.Add(time.Hour))
	newest := testdb.Video(t, s.db, alice.ID, "new", 0, base.Add(2*time.Hour))

	stats, err = s.dashboard.ChannelStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.VideoCount)
	assert.EqualValues(t, 10, stats.TotalViews)

	videos, err := s.dashboard.ChannelVideos(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, []string{newest.ID, mid.ID, old.ID}, []string{videos[0].ID, videos[1].ID, videos[2].ID})

	_, err = s.dashboard.ChannelStats(ctx, "")
	assert.ErrorIs(t, err, errno.ErrUnauthorized)
}
