package types

import (
	"Vidhub/models"
	"time"
)

type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PlaylistDetail 播放列表详情，视频按加入顺序排列
type PlaylistDetail struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	VideoIDs    []string     `json:"video_ids"`
	Videos      []*VideoItem `json:"videos"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func NewPlaylistDetail(p *models.Playlist, videos []*VideoItem) *PlaylistDetail {
	ids := p.VideoIDs
	if ids == nil {
		ids = []string{}
	}
	if videos == nil {
		videos = []*VideoItem{}
	}
	return &PlaylistDetail{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		VideoIDs:    ids,
		Videos:      videos,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
