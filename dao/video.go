package dao

import (
	"Vidhub/models"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoDAO struct {
	Repo[models.Video]
}

func NewVideoDAO(db *gorm.DB) *VideoDAO {
	return &VideoDAO{Repo: NewRepo[models.Video](db)}
}

// VideoFilter 视频列表查询条件，SortBy 需是 sortableVideoColumns 中的列
type VideoFilter struct {
	Keyword string
	OwnerID string
	SortBy  string
	Desc    bool
	Limit   int
	Offset  int
}

var sortableVideoColumns = map[string]string{
	"created_at": "created_at",
	"createdAt":  "created_at",
	"views":      "views",
	"title":      "title",
	"duration":   "duration",
}

// SortColumn 排序字段白名单，未知字段返回 false
func SortColumn(name string) (string, bool) {
	col, ok := sortableVideoColumns[name]
	return col, ok
}

// List 标题模糊搜索 + 作者过滤 + 排序分页，返回当前页与总数
func (d *VideoDAO) List(ctx context.Context, f VideoFilter) ([]*models.Video, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Video{})
	if f.Keyword != "" {
		query = query.Where("LOWER(title) LIKE ? ESCAPE '!'", "%"+escapeLike(f.Keyword)+"%")
	}
	if f.OwnerID != "" {
		query = query.Where("owner_id = ?", f.OwnerID)
	}

	// 计数与分页查询共用条件
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "dao.VideoDAO.List count")
	}

	col, ok := SortColumn(f.SortBy)
	if !ok {
		col = "created_at"
	}
	order := col + " ASC"
	if f.Desc {
		order = col + " DESC"
	}

	var videos []*models.Video
	err := query.
		Order(order).
		Order("id ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "dao.VideoDAO.List")
	}
	return videos, total, nil
}

// FindByOwner 频道全部视频，按发布时间倒序
func (d *VideoDAO) FindByOwner(ctx context.Context, ownerID string) ([]*models.Video, error) {
	videos := make([]*models.Video, 0)
	err := d.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, errors.Wrap(err, "dao.VideoDAO.FindByOwner")
}

// FindByIDs 按传入顺序返回存在的视频
func (d *VideoDAO) FindByIDs(ctx context.Context, ids []string) ([]*models.Video, error) {
	if len(ids) == 0 {
		return []*models.Video{}, nil
	}
	var videos []*models.Video
	if err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "dao.VideoDAO.FindByIDs")
	}
	byID := make(map[string]*models.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]*models.Video, 0, len(videos))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

// IncrViews 播放数 +1，返回是否命中
func (d *VideoDAO) IncrViews(ctx context.Context, videoID string) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "dao.VideoDAO.IncrViews")
	}
	return res.RowsAffected > 0, nil
}

// OwnerStats 频道视频数与总播放数，空频道返回 0, 0
func (d *VideoDAO) OwnerStats(ctx context.Context, ownerID string) (count int64, views int64, err error) {
	var row struct {
		Count int64
		Views int64
	}
	err = d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Select("COUNT(*) AS count, COALESCE(SUM(views), 0) AS views").
		Where("owner_id = ?", ownerID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "dao.VideoDAO.OwnerStats")
	}
	return row.Count, row.Views, nil
}

// DeleteCascade 删除视频及其点赞、播放列表条目，视频不存在返回 gorm.ErrRecordNotFound
func (d *VideoDAO) DeleteCascade(ctx context.Context, videoID string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", models.TargetVideo, videoID).
			Delete(&models.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete video likes")
		}
		if err := tx.Where("video_id = ?", videoID).
			Delete(&models.PlaylistVideo{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist entries")
		}
		res := tx.Where("id = ?", videoID).Delete(&models.Video{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete video")
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
