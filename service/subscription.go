package service

import (
	"Vidhub/dao"
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/types"
	"context"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	ToggleSubscription(ctx context.Context, callerID, channelID string) (*ToggleResult, error)
	ChannelSubscribers(ctx context.Context, channelID string) ([]*types.SubscriptionItem, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]*types.SubscriptionItem, error)
}

type SubscriptionService struct {
	Toggle      *ToggleEngine
	RelationDAO *dao.RelationDAO
	UserDAO     *dao.Users
}

// ToggleSubscription 订阅/取消订阅频道，不能订阅自己
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, callerID, channelID string) (*ToggleResult, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := requireID(channelID, "channel id"); err != nil {
		return nil, err
	}
	if callerID == channelID {
		return nil, errno.InvalidArgumentf("you cannot subscribe to yourself")
	}
	ok, err := s.UserDAO.IsExist(ctx, "id = ?", channelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errno.NotFoundf("channel not found")
	}
	return s.Toggle.Toggle(ctx, callerID, models.TargetChannel, channelID)
}

// ChannelSubscribers 频道的订阅者，最新订阅在前
func (s *SubscriptionService) ChannelSubscribers(ctx context.Context, channelID string) ([]*types.SubscriptionItem, error) {
	if err := requireID(channelID, "channel id"); err != nil {
		return nil, err
	}
	relations, err := s.RelationDAO.ListByTarget(ctx, models.TargetChannel, channelID)
	if err != nil {
		return nil, err
	}
	return s.profiles(ctx, relations, func(r *models.Relation) string { return r.ActorID })
}

// SubscribedChannels 用户订阅的频道，最新订阅在前
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]*types.SubscriptionItem, error) {
	if err := requireID(subscriberID, "subscriber id"); err != nil {
		return nil, err
	}
	relations, err := s.RelationDAO.ListByActor(ctx, subscriberID, models.TargetChannel)
	if err != nil {
		return nil, err
	}
	return s.profiles(ctx, relations, func(r *models.Relation) string { return r.TargetID })
}

func (s *SubscriptionService) profiles(ctx context.Context, relations []*models.Relation, peer func(*models.Relation) string) ([]*types.SubscriptionItem, error) {
	ids := make([]string, 0, len(relations))
	for _, r := range relations {
		ids = append(ids, peer(r))
	}
	users, err := s.UserDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*types.SubscriptionItem, 0, len(relations))
	for _, r := range relations {
		profile := types.NewUserProfile(users[peer(r)])
		if profile == nil {
			profile = &types.UserProfile{ID: peer(r)}
		}
		out = append(out, &types.SubscriptionItem{User: profile, SubscribedAt: r.CreatedAt})
	}
	return out, nil
}
