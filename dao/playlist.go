package dao

import (
	"Vidhub/models"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistDAO struct {
	Repo[models.Playlist]
}

func NewPlaylistDAO(db *gorm.DB) *PlaylistDAO {
	return &PlaylistDAO{Repo: NewRepo[models.Playlist](db)}
}

// FindWithVideos 查询播放列表并按 position 填充 VideoIDs，不存在返回 nil, nil
func (d *PlaylistDAO) FindWithVideos(ctx context.Context, playlistID string) (*models.Playlist, error) {
	playlist, err := d.FindByID(ctx, playlistID)
	if err != nil || playlist == nil {
		return playlist, err
	}
	if playlist.VideoIDs, err = d.VideoIDs(ctx, playlistID); err != nil {
		return nil, err
	}
	return playlist, nil
}

// FindByOwner 用户的播放列表，最新在前，不填充视频
func (d *PlaylistDAO) FindByOwner(ctx context.Context, ownerID string) ([]*models.Playlist, error) {
	playlists := make([]*models.Playlist, 0)
	err := d.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	return playlists, errors.Wrap(err, "dao.PlaylistDAO.FindByOwner")
}

func (d *PlaylistDAO) VideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	ids := make([]string, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Pluck("video_id", &ids).Error
	return ids, errors.Wrap(err, "dao.PlaylistDAO.VideoIDs")
}

// AddVideo 追加到列表末尾，已存在时不做任何修改，返回是否新增
func (d *PlaylistDAO) AddVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	added := false
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PlaylistVideo{}).
			Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "check playlist entry")
		}
		if count > 0 {
			return nil
		}

		var last int
		if err := tx.Model(&models.PlaylistVideo{}).
			Select("COALESCE(MAX(position), 0)").
			Where("playlist_id = ?", playlistID).
			Scan(&last).Error; err != nil {
			return errors.Wrap(err, "max position")
		}

		entry := &models.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID, Position: last + 1}
		if err := tx.Create(entry).Error; err != nil {
			if isDuplicateKey(err) {
				return nil
			}
			return errors.Wrap(err, "insert playlist entry")
		}
		added = true
		return touchPlaylist(tx, playlistID)
	})
	if err != nil {
		return false, errors.Wrap(err, "dao.PlaylistDAO.AddVideo")
	}
	return added, nil
}

// RemoveVideo 从列表移除，不存在时返回 false
func (d *PlaylistDAO) RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	removed := false
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
			Delete(&models.PlaylistVideo{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete playlist entry")
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return touchPlaylist(tx, playlistID)
	})
	if err != nil {
		return false, errors.Wrap(err, "dao.PlaylistDAO.RemoveVideo")
	}
	return removed, nil
}

// DeleteCascade 删除列表及其条目，列表不存在返回 gorm.ErrRecordNotFound
func (d *PlaylistDAO) DeleteCascade(ctx context.Context, playlistID string) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).
			Delete(&models.PlaylistVideo{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist entries")
		}
		res := tx.Where("id = ?", playlistID).Delete(&models.Playlist{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete playlist")
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func touchPlaylist(tx *gorm.DB, playlistID string) error {
	err := tx.Model(&models.Playlist{}).
		Where("id = ?", playlistID).
		UpdateColumn("updated_at", time.Now()).Error
	return errors.Wrap(err, "touch playlist")
}
