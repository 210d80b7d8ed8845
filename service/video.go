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
	"time"

	"gorm.io/gorm"
)

var _ IVideoService = (*VideoService)(nil)

type IVideoService interface {
	PublishVideo(ctx context.Context, ownerID string, req *types.PublishVideoRequest) (*models.Video, error)
	GetVideo(ctx context.Context, videoID string) (*types.VideoItem, error)
	ListVideos(ctx context.Context, query *types.ListVideosQuery) (*types.VideoListResponse, error)
	UpdateVideo(ctx context.Context, videoID, callerID string, req *types.UpdateVideoRequest, thumbnailPath string) (*models.Video, error)
	DeleteVideo(ctx context.Context, videoID, callerID string) error
	TogglePublish(ctx context.Context, videoID, callerID string) (*models.Video, error)
	RecordView(ctx context.Context, videoID string) error
}

type VideoService struct {
	VideoDAO *dao.VideoDAO
	UserDAO  *dao.Users
	Assets   IAssetStore
	Events   IEventRecorder
}

// PublishVideo 上传媒体并创建视频，创建即发布
func (s *VideoService) PublishVideo(ctx context.Context, ownerID string, req *types.PublishVideoRequest) (*models.Video, error) {
	if err := requireCaller(ownerID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || req.VideoPath == "" {
		return nil, errno.InvalidArgumentf("title and video file are required")
	}
	if req.Duration < 0 {
		return nil, errno.InvalidArgumentf("invalid duration")
	}

	media, err := s.Assets.Store(ctx, req.VideoPath, AssetCategoryVideo)
	if err != nil {
		return nil, err
	}
	video := &models.Video{
		ID:          ident.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		VideoURL:    media.URL,
		VideoKey:    media.Key,
		Duration:    req.Duration,
		IsPublished: true,
	}
	if req.ThumbnailPath != "" {
		thumb, err := s.Assets.Store(ctx, req.ThumbnailPath, AssetCategoryThumbnail)
		if err != nil {
			removeAssets(ctx, s.Assets, media.Key)
			return nil, err
		}
		video.ThumbnailURL, video.ThumbnailKey = thumb.URL, thumb.Key
	}

	if err := s.VideoDAO.Create(ctx, video); err != nil {
		removeAssets(ctx, s.Assets, video.VideoKey, video.ThumbnailKey)
		return nil, err
	}
	s.record(ctx, ownerID, "video.published", video.ID)
	return video, nil
}

// GetVideo 视频详情，附带作者资料
func (s *VideoService) GetVideo(ctx context.Context, videoID string) (*types.VideoItem, error) {
	if err := requireID(videoID, "video id"); err != nil {
		return nil, err
	}
	video, err := s.fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}
	owner, err := s.UserDAO.FindByID(ctx, video.OwnerID)
	if err != nil {
		return nil, err
	}
	return types.NewVideoItem(video, owner), nil
}

// ListVideos 标题搜索、作者过滤、白名单排序与分页
func (s *VideoService) ListVideos(ctx context.Context, query *types.ListVideosQuery) (*types.VideoListResponse, error) {
	page, limit := query.Page, query.Limit
	if page <= 0 {
		page = types.DefaultPage
	}
	if limit <= 0 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}

	filter := dao.VideoFilter{
		Keyword: strings.TrimSpace(query.Query),
		SortBy:  "created_at",
		Desc:    true,
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}
	if query.SortBy != "" {
		if _, ok := dao.SortColumn(query.SortBy); !ok {
			return nil, errno.InvalidArgumentf("unsupported sortBy %q", query.SortBy)
		}
		filter.SortBy = query.SortBy
	}
	switch strings.ToLower(query.SortType) {
	case "", "desc":
	case "asc":
		filter.Desc = false
	default:
		return nil, errno.InvalidArgumentf("sortType must be asc or desc")
	}
	if query.UserID != "" {
		if err := requireID(query.UserID, "user id"); err != nil {
			return nil, err
		}
		filter.OwnerID = query.UserID
	}

	videos, total, err := s.VideoDAO.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items, err := s.withOwners(ctx, videos)
	if err != nil {
		return nil, err
	}

	return &types.VideoListResponse{
		Videos:      items,
		TotalVideos: total,
		Page:        page,
		Limit:       limit,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// UpdateVideo 稀疏更新标题、描述与封面
func (s *VideoService) UpdateVideo(ctx context.Context, videoID, callerID string, req *types.UpdateVideoRequest, thumbnailPath string) (*models.Video, error) {
	video, err := s.fetchOwned(ctx, videoID, callerID)
	if err != nil {
		return nil, err
	}

	if v := patchText(req.Title); v != nil {
		video.Title = *v
	}
	if v := patchText(req.Description); v != nil {
		video.Description = *v
	}
	oldThumb := ""
	if thumbnailPath != "" {
		thumb, err := s.Assets.Store(ctx, thumbnailPath, AssetCategoryThumbnail)
		if err != nil {
			return nil, err
		}
		oldThumb = video.ThumbnailKey
		video.ThumbnailURL, video.ThumbnailKey = thumb.URL, thumb.Key
	}

	video.UpdatedAt = time.Now()
	if err := s.VideoDAO.Save(ctx, video); err != nil {
		if thumbnailPath != "" {
			removeAssets(ctx, s.Assets, video.ThumbnailKey)
		}
		return nil, err
	}
	removeAssets(ctx, s.Assets, oldThumb)
	return video, nil
}

// DeleteVideo 删除视频，同时清理点赞和播放列表条目
func (s *VideoService) DeleteVideo(ctx context.Context, videoID, callerID string) error {
	video, err := s.fetchOwned(ctx, videoID, callerID)
	if err != nil {
		return err
	}
	if err := s.VideoDAO.DeleteCascade(ctx, video.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundf("video not found")
		}
		return err
	}
	removeAssets(ctx, s.Assets, video.VideoKey, video.ThumbnailKey)
	s.record(ctx, callerID, "video.deleted", video.ID)
	return nil
}

// TogglePublish 切换发布状态
func (s *VideoService) TogglePublish(ctx context.Context, videoID, callerID string) (*models.Video, error) {
	video, err := s.fetchOwned(ctx, videoID, callerID)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	video.UpdatedAt = time.Now()
	if err := s.VideoDAO.Save(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// RecordView 播放数 +1
func (s *VideoService) RecordView(ctx context.Context, videoID string) error {
	if err := requireID(videoID, "video id"); err != nil {
		return err
	}
	ok, err := s.VideoDAO.IncrViews(ctx, videoID)
	if err != nil {
		return err
	}
	if !ok {
		return errno.NotFoundf("video not found")
	}
	return nil
}

func (s *VideoService) fetch(ctx context.Context, videoID string) (*models.Video, error) {
	video, err := s.VideoDAO.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errno.NotFoundf("video not found")
	}
	return video, nil
}

// fetchOwned 校验顺序: 调用者 -> id -> 存在 -> 所有权
func (s *VideoService) fetchOwned(ctx context.Context, videoID, callerID string) (*models.Video, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := requireID(videoID, "video id"); err != nil {
		return nil, err
	}
	video, err := s.fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(video, callerID); err != nil {
		return nil, errno.Forbiddenf("you are not authorized to modify this video")
	}
	return video, nil
}

func (s *VideoService) withOwners(ctx context.Context, videos []*models.Video) ([]*types.VideoItem, error) {
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.OwnerID)
	}
	owners, err := s.UserDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]*types.VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, types.NewVideoItem(v, owners[v.OwnerID]))
	}
	return items, nil
}

func (s *VideoService) record(ctx context.Context, actorID, action, videoID string) {
	if s.Events != nil {
		s.Events.Record(ctx, actorID, action, models.TargetVideo, videoID, nil)
	}
}

// patchText 稀疏更新：nil 或空白返回 nil，表示不修改
func patchText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
