package dao

import (
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/pkg/ident"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RelationDAO 点赞与订阅两类开关关系的统一存取
// video/comment/tweet 存于 likes，channel 存于 subscriptions
type RelationDAO struct {
	Db *gorm.DB
}

func NewRelationDAO(db *gorm.DB) *RelationDAO {
	return &RelationDAO{Db: db}
}

// scope 按类型定位表与查询条件
func (d *RelationDAO) scope(ctx context.Context, actorID string, kind models.TargetKind, targetID string) (*gorm.DB, error) {
	db := d.Db.WithContext(ctx)
	switch kind {
	case models.TargetVideo, models.TargetComment, models.TargetTweet:
		q := db.Model(&models.Like{}).Where("target_kind = ?", kind)
		if actorID != "" {
			q = q.Where("user_id = ?", actorID)
		}
		if targetID != "" {
			q = q.Where("target_id = ?", targetID)
		}
		return q, nil
	case models.TargetChannel:
		q := db.Model(&models.Subscription{})
		if actorID != "" {
			q = q.Where("subscriber_id = ?", actorID)
		}
		if targetID != "" {
			q = q.Where("channel_id = ?", targetID)
		}
		return q, nil
	}
	return nil, errno.InvalidArgumentf("unknown target kind %q", kind)
}

func (d *RelationDAO) Exists(ctx context.Context, actorID string, kind models.TargetKind, targetID string) (bool, error) {
	q, err := d.scope(ctx, actorID, kind, targetID)
	if err != nil {
		return false, err
	}
	var count int64
	if err := q.Limit(1).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "dao.RelationDAO.Exists")
	}
	return count > 0, nil
}

// Get 查询单条关系，不存在返回 nil, nil
func (d *RelationDAO) Get(ctx context.Context, actorID string, kind models.TargetKind, targetID string) (*models.Relation, error) {
	list, err := d.list(ctx, actorID, kind, targetID, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// Create 唯一索引冲突时返回 ErrDuplicateRelation
func (d *RelationDAO) Create(ctx context.Context, actorID string, kind models.TargetKind, targetID string) (*models.Relation, error) {
	var (
		row      any
		relation func() *models.Relation
	)
	switch kind {
	case models.TargetVideo, models.TargetComment, models.TargetTweet:
		like := &models.Like{ID: ident.New(), UserID: actorID, TargetKind: kind, TargetID: targetID}
		row, relation = like, like.Relation
	case models.TargetChannel:
		sub := &models.Subscription{ID: ident.New(), SubscriberID: actorID, ChannelID: targetID}
		row, relation = sub, sub.Relation
	default:
		return nil, errno.InvalidArgumentf("unknown target kind %q", kind)
	}

	if err := d.Db.WithContext(ctx).Create(row).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateRelation
		}
		return nil, errors.Wrap(err, "dao.RelationDAO.Create")
	}
	return relation(), nil
}

// Delete 未删除任何行时返回 ErrRelationNotFound
func (d *RelationDAO) Delete(ctx context.Context, actorID string, kind models.TargetKind, targetID string) error {
	db := d.Db.WithContext(ctx)
	var res *gorm.DB
	switch kind {
	case models.TargetVideo, models.TargetComment, models.TargetTweet:
		res = db.Where("user_id = ? AND target_kind = ? AND target_id = ?", actorID, kind, targetID).
			Delete(&models.Like{})
	case models.TargetChannel:
		res = db.Where("subscriber_id = ? AND channel_id = ?", actorID, targetID).
			Delete(&models.Subscription{})
	default:
		return errno.InvalidArgumentf("unknown target kind %q", kind)
	}
	if res.Error != nil {
		return errors.Wrap(res.Error, "dao.RelationDAO.Delete")
	}
	if res.RowsAffected == 0 {
		return ErrRelationNotFound
	}
	return nil
}

// ListByActor 某用户发起的全部关系，最新在前
func (d *RelationDAO) ListByActor(ctx context.Context, actorID string, kind models.TargetKind) ([]*models.Relation, error) {
	return d.list(ctx, actorID, kind, "", 0)
}

// ListByTarget 指向某目标的全部关系，最新在前
func (d *RelationDAO) ListByTarget(ctx context.Context, kind models.TargetKind, targetID string) ([]*models.Relation, error) {
	return d.list(ctx, "", kind, targetID, 0)
}

func (d *RelationDAO) CountByTarget(ctx context.Context, kind models.TargetKind, targetID string) (int64, error) {
	q, err := d.scope(ctx, "", kind, targetID)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "dao.RelationDAO.CountByTarget")
	}
	return count, nil
}

// CountVideoLikesByOwner 频道所有视频收到的点赞总数
func (d *RelationDAO) CountVideoLikesByOwner(ctx context.Context, ownerID string) (int64, error) {
	db := d.Db.WithContext(ctx)
	videoIDs := db.Model(&models.Video{}).Select("id").Where("owner_id = ?", ownerID)

	var count int64
	err := db.Model(&models.Like{}).
		Where("target_kind = ? AND target_id IN (?)", models.TargetVideo, videoIDs).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "dao.RelationDAO.CountVideoLikesByOwner")
	}
	return count, nil
}

func (d *RelationDAO) list(ctx context.Context, actorID string, kind models.TargetKind, targetID string, limit int) ([]*models.Relation, error) {
	q, err := d.scope(ctx, actorID, kind, targetID)
	if err != nil {
		return nil, err
	}
	q = q.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	out := make([]*models.Relation, 0)
	if kind == models.TargetChannel {
		var subs []*models.Subscription
		if err := q.Find(&subs).Error; err != nil {
			return nil, errors.Wrap(err, "dao.RelationDAO.list")
		}
		for _, s := range subs {
			out = append(out, s.Relation())
		}
		return out, nil
	}

	var likes []*models.Like
	if err := q.Find(&likes).Error; err != nil {
		return nil, errors.Wrap(err, "dao.RelationDAO.list")
	}
	for _, l := range likes {
		out = append(out, l.Relation())
	}
	return out, nil
}
