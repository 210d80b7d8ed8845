package models

import "time"

type Playlist struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	OwnerID     string    `gorm:"column:owner_id;type:char(36);not null;index" json:"owner_id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	// VideoIDs 按 position 升序，由 dao 从 playlist_videos 填充
	VideoIDs []string `gorm:"-" json:"video_ids"`
}

func (Playlist) TableName() string {
	return "playlists"
}

func (p *Playlist) GetOwnerID() string { return p.OwnerID }

// PlaylistVideo 播放列表条目
// 唯一键: playlist_id + video_id，同一视频在列表中最多出现一次
type PlaylistVideo struct {
	PlaylistID string    `gorm:"column:playlist_id;type:char(36);primaryKey" json:"playlist_id"`
	VideoID    string    `gorm:"column:video_id;type:char(36);primaryKey;index" json:"video_id"`
	Position   int       `gorm:"column:position;not null" json:"position"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
