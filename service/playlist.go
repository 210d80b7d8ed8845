package service

import (
	"Vidhub/dao"
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/pkg/ident"
	"Vidhub/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var _ IPlaylistService = (*PlaylistService)(nil)

type IPlaylistService interface {
	CreatePlaylist(ctx context.Context, ownerID string, req *types.CreatePlaylistRequest) (*types.PlaylistDetail, error)
	GetPlaylist(ctx context.Context, playlistID string) (*types.PlaylistDetail, error)
	UserPlaylists(ctx context.Context, userID string) ([]*types.PlaylistDetail, error)
	UpdatePlaylist(ctx context.Context, playlistID, callerID string, req *types.UpdatePlaylistRequest) (*types.PlaylistDetail, error)
	DeletePlaylist(ctx context.Context, playlistID, callerID string) error
	AddVideo(ctx context.Context, playlistID, callerID, videoID string) (*types.PlaylistDetail, error)
	RemoveVideo(ctx context.Context, playlistID, callerID, videoID string) (*types.PlaylistDetail, error)
}

type PlaylistService struct {
	PlaylistDAO *dao.PlaylistDAO
	VideoDAO    *dao.VideoDAO
	UserDAO     *dao.Users
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, ownerID string, req *types.CreatePlaylistRequest) (*types.PlaylistDetail, error) {
	if err := requireCaller(ownerID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errno.InvalidArgumentf("playlist name is required")
	}

	playlist := &models.Playlist{
		ID:          ident.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.PlaylistDAO.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return types.NewPlaylistDetail(playlist, nil), nil
}

// GetPlaylist 播放列表详情，视频按加入顺序展开
func (s *PlaylistService) GetPlaylist(ctx context.Context, playlistID string) (*types.PlaylistDetail, error) {
	if err := requireID(playlistID, "playlist id"); err != nil {
		return nil, err
	}
	playlist, err := s.fetch(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, playlist)
}

// UserPlaylists 用户的播放列表，最新在前，只返回视频 ID
func (s *PlaylistService) UserPlaylists(ctx context.Context, userID string) ([]*types.PlaylistDetail, error) {
	if err := requireID(userID, "user id"); err != nil {
		return nil, err
	}
	playlists, err := s.PlaylistDAO.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*types.PlaylistDetail, 0, len(playlists))
	for _, p := range playlists {
		if p.VideoIDs, err = s.PlaylistDAO.VideoIDs(ctx, p.ID); err != nil {
			return nil, err
		}
		out = append(out, types.NewPlaylistDetail(p, nil))
	}
	return out, nil
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistID, callerID string, req *types.UpdatePlaylistRequest) (*types.PlaylistDetail, error) {
	playlist, err := s.fetchOwned(ctx, playlistID, callerID)
	if err != nil {
		return nil, err
	}

	changed := false
	if v := patchText(req.Name); v != nil {
		playlist.Name, changed = *v, true
	}
	if v := patchText(req.Description); v != nil {
		playlist.Description, changed = *v, true
	}
	if changed {
		if err := s.PlaylistDAO.Save(ctx, playlist); err != nil {
			return nil, err
		}
	}
	return s.detail(ctx, playlist)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, callerID string) error {
	playlist, err := s.fetchOwned(ctx, playlistID, callerID)
	if err != nil {
		return err
	}
	err = s.PlaylistDAO.DeleteCascade(ctx, playlist.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.NotFoundf("playlist not found")
	}
	return err
}

// AddVideo 集合语义，重复添加不做修改
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, callerID, videoID string) (*types.PlaylistDetail, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := requireID(videoID, "video id"); err != nil {
		return nil, err
	}
	playlist, err := s.fetchOwned(ctx, playlistID, callerID)
	if err != nil {
		return nil, err
	}
	exists, err := s.VideoDAO.IsExist(ctx, "id = ?", videoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.NotFoundf("video not found")
	}

	if _, err := s.PlaylistDAO.AddVideo(ctx, playlist.ID, videoID); err != nil {
		return nil, err
	}
	return s.reload(ctx, playlist.ID)
}

// RemoveVideo 视频不在列表中时视为成功
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, callerID, videoID string) (*types.PlaylistDetail, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := requireID(videoID, "video id"); err != nil {
		return nil, err
	}
	playlist, err := s.fetchOwned(ctx, playlistID, callerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.PlaylistDAO.RemoveVideo(ctx, playlist.ID, videoID); err != nil {
		return nil, err
	}
	return s.reload(ctx, playlist.ID)
}

func (s *PlaylistService) reload(ctx context.Context, playlistID string) (*types.PlaylistDetail, error) {
	playlist, err := s.fetch(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, playlist)
}

func (s *PlaylistService) detail(ctx context.Context, playlist *models.Playlist) (*types.PlaylistDetail, error) {
	videos, err := s.VideoDAO.FindByIDs(ctx, playlist.VideoIDs)
	if err != nil {
		return nil, err
	}
	ownerIDs := make([]string, 0, len(videos))
	for _, v := range videos {
		ownerIDs = append(ownerIDs, v.OwnerID)
	}
	owners, err := s.UserDAO.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*types.VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, types.NewVideoItem(v, owners[v.OwnerID]))
	}
	return types.NewPlaylistDetail(playlist, items), nil
}

func (s *PlaylistService) fetch(ctx context.Context, playlistID string) (*models.Playlist, error) {
	playlist, err := s.PlaylistDAO.FindWithVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist == nil {
		return nil, errno.NotFoundf("playlist not found")
	}
	return playlist, nil
}

func (s *PlaylistService) fetchOwned(ctx context.Context, playlistID, callerID string) (*models.Playlist, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := requireID(playlistID, "playlist id"); err != nil {
		return nil, err
	}
	playlist, err := s.fetch(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(playlist, callerID); err != nil {
		return nil, errno.Forbiddenf("you are not authorized to modify this playlist")
	}
	return playlist, nil
}
