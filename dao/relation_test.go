package dao

import (
	"context"
	"testing"
	"time"

	"Vidhub/internal/testdb"
	"Vidhub/models"
	"Vidhub/pkg/errno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationDAO_LikeLifecycle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	d := NewRelationDAO(db)
	alice := testdb.User(t, db, "alice")
	bob := testdb.User(t, db, "bob")
	video := testdb.Video(t, db, alice.ID, "intro", 0, time.Time{})

	exists, err := d.Exists(ctx, bob.ID, models.TargetVideo, video.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	rel, err := d.Create(ctx, bob.ID, models.TargetVideo, video.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, rel.ActorID)
	assert.Equal(t, models.TargetVideo, rel.Kind)
	assert.Equal(t, video.ID, rel.TargetID)

	_, err = d.Create(ctx, bob.ID, models.TargetVideo, video.ID)
	assert.ErrorIs(t, err, ErrDuplicateRelation)

	got, err := d.Get(ctx, bob.ID, models.TargetVideo, video.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rel.ID, got.ID)

	// 同一目标 id 不同类型互不影响
	exists, err = d.Exists(ctx, bob.ID, models.TargetTweet, video.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, d.Delete(ctx, bob.ID, models.TargetVideo, video.ID))
	assert.ErrorIs(t, d.Delete(ctx, bob.ID, models.TargetVideo, video.ID), ErrRelationNotFound)

	got, err = d.Get(ctx, bob.ID, models.TargetVideo, video.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRelationDAO_Subscription(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	d := NewRelationDAO(db)
	alice := testdb.User(t, db, "alice")
	bob := testdb.User(t, db, "bob")
	carol := testdb.User(t, db, "carol")

	_, err := d.Create(ctx, bob.ID, models.TargetChannel, alice.ID)
	require.NoError(t, err)
	_, err = d.Create(ctx, carol.ID, models.TargetChannel, alice.ID)
	require.NoError(t, err)
	_, err = d.Create(ctx, bob.ID, models.TargetChannel, alice.ID)
	assert.ErrorIs(t, err, ErrDuplicateRelation)

	subscribers, err := d.ListByTarget(ctx, models.TargetChannel, alice.ID)
	require.NoError(t, err)
	assert.Len(t, subscribers, 2)

	channels, err := d.ListByActor(ctx, bob.ID, models.TargetChannel)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, alice.ID, channels[0].TargetID)

	count, err := d.CountByTarget(ctx, models.TargetChannel, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRelationDAO_UnknownKind(t *testing.T) {
	d := NewRelationDAO(testdb.New(t))
	ctx := context.Background()

	_, err := d.Exists(ctx, "a", models.TargetKind("playlist"), "b")
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
	_, err = d.Create(ctx, "a", models.TargetKind("playlist"), "b")
	assert.ErrorIs(t, err, errno.ErrInvalidArgument)
	assert.ErrorIs(t, d.Delete(ctx, "a", models.TargetKind(""), "b"), errno.ErrInvalidArgument)
}

func TestRelationDAO_CountVideoLikesByOwner(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	d := NewRelationDAO(db)
	alice := testdb.User(t, db, "alice")
	bob := testdb.User(t, db, "bob")
	v1 := testdb.Video(t, db, alice.ID, "one", 0, time.Time{})
	v2 := testdb.Video(t, db, alice.ID, "two", 0, time.Time{})
	other := testdb.Video(t, db, bob.ID, "other", 0, time.Time{})
	tweet := testdb.Tweet(t, db, alice.ID, "hello")

	for _, target := range []struct {
		actor string
		kind  models.TargetKind
		id    string
	}{
		{bob.ID, models.TargetVideo, v1.ID},
		{bob.ID, models.TargetVideo, v2.ID},
		{alice.ID, models.TargetVideo, v1.ID},
		{alice.ID, models.TargetVideo, other.ID},
		{bob.ID, models.TargetTweet, tweet.ID},
	} {
		_, err := d.Create(ctx, target.actor, target.kind, target.id)
		require.NoError(t, err)
	}

	count, err := d.CountVideoLikesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = d.CountVideoLikesByOwner(ctx, testdb.User(t, db, "nobody").ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
