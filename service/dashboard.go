package service

import (
	"Vidhub/dao"
	"Vidhub/models"
	"Vidhub/types"
	"context"

	"github.com/sourcegraph/conc/pool"
)

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	ChannelStats(ctx context.Context, ownerID string) (*types.ChannelStats, error)
	ChannelVideos(ctx context.Context, ownerID string) ([]*types.VideoItem, error)
}

// DashboardService 频道统计，每次实时计算，不做缓存
type DashboardService struct {
	VideoDAO    *dao.VideoDAO
	RelationDAO *dao.RelationDAO
	UserDAO     *dao.Users
}

// ChannelStats 视频数、总播放、订阅数、视频总点赞，三组查询并发执行
func (s *DashboardService) ChannelStats(ctx context.Context, ownerID string) (*types.ChannelStats, error) {
	if err := requireCaller(ownerID); err != nil {
		return nil, err
	}

	stats := &types.ChannelStats{}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		count, views, err := s.VideoDAO.OwnerStats(ctx, ownerID)
		stats.VideoCount, stats.TotalViews = count, views
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.RelationDAO.CountByTarget(ctx, models.TargetChannel, ownerID)
		stats.SubscriberCount = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.RelationDAO.CountVideoLikesByOwner(ctx, ownerID)
		stats.TotalLikes = count
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ChannelVideos 频道全部视频，最新在前
func (s *DashboardService) ChannelVideos(ctx context.Context, ownerID string) ([]*types.VideoItem, error) {
	if err := requireCaller(ownerID); err != nil {
		return nil, err
	}
	videos, err := s.VideoDAO.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	owner, err := s.UserDAO.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, types.NewVideoItem(v, owner))
	}
	return items, nil
}
