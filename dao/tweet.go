package dao

import (
	"Vidhub/models"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TweetDAO struct {
	Repo[models.Tweet]
}

func NewTweetDAO(db *gorm.DB) *TweetDAO {
	return &TweetDAO{Repo: NewRepo[models.Tweet](db)}
}

// FindByOwner 用户的全部动态，最新在前
func (d *TweetDAO) FindByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error) {
	tweets := make([]*models.Tweet, 0)
	err := d.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweets).Error
	return tweets, errors.Wrap(err, "dao.TweetDAO.FindByOwner")
}

// DeleteCascade 删除动态及其点赞
func (d *TweetDAO) DeleteCascade(ctx context.Context, tweetID string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", models.TargetTweet, tweetID).
			Delete(&models.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete tweet likes")
		}
		res := tx.Where("id = ?", tweetID).Delete(&models.Tweet{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete tweet")
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
