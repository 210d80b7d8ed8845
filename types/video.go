package types

import (
	"Vidhub/models"
	"time"
)

// PublishVideoRequest 发布视频，媒体文件已由上传层落盘，这里只携带本地路径
type PublishVideoRequest struct {
	Title         string `form:"title" json:"title"`
	Description   string `form:"description" json:"description"`
	Duration      int    `form:"duration" json:"duration"`
	VideoPath     string `form:"-" json:"-"`
	ThumbnailPath string `form:"-" json:"-"`
}

// UpdateVideoRequest 稀疏更新，nil 或空白表示不修改
type UpdateVideoRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
}

// ListVideosQuery 视频列表查询参数
type ListVideosQuery struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type VideoItem struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	VideoURL     string       `json:"video_url"`
	ThumbnailURL string       `json:"thumbnail_url"`
	Duration     int          `json:"duration"`
	Views        int64        `json:"views"`
	IsPublished  bool         `json:"is_published"`
	Owner        *UserProfile `json:"owner"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func NewVideoItem(v *models.Video, owner *models.User) *VideoItem {
	item := &VideoItem{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Duration:     v.Duration,
		Views:        v.Views,
		IsPublished:  v.IsPublished,
		Owner:        NewUserProfile(owner),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if item.Owner == nil {
		item.Owner = &UserProfile{ID: v.OwnerID}
	}
	return item
}

type VideoListResponse struct {
	Videos      []*VideoItem `json:"videos"`
	TotalVideos int64        `json:"total_videos"`
	Page        int          `json:"page"`
	Limit       int          `json:"limit"`
	TotalPages  int          `json:"total_pages"`
}
