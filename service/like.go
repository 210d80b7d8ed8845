package service

import (
	"Vidhub/dao"
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/types"
	"context"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	ToggleVideoLike(ctx context.Context, callerID, videoID string) (*ToggleResult, error)
	ToggleCommentLike(ctx context.Context, callerID, commentID string) (*ToggleResult, error)
	ToggleTweetLike(ctx context.Context, callerID, tweetID string) (*ToggleResult, error)
	LikedVideos(ctx context.Context, callerID string) ([]*types.LikedVideo, error)
}

type LikeService struct {
	Toggle      *ToggleEngine
	RelationDAO *dao.RelationDAO
	VideoDAO    *dao.VideoDAO
	CommentDAO  *dao.CommentDAO
	TweetDAO    *dao.TweetDAO
	UserDAO     *dao.Users
}

func (s *LikeService) ToggleVideoLike(ctx context.Context, callerID, videoID string) (*ToggleResult, error) {
	return s.toggle(ctx, callerID, models.TargetVideo, videoID, s.VideoDAO.IsExist)
}

func (s *LikeService) ToggleCommentLike(ctx context.Context, callerID, commentID string) (*ToggleResult, error) {
	return s.toggle(ctx, callerID, models.TargetComment, commentID, s.CommentDAO.IsExist)
}

func (s *LikeService) ToggleTweetLike(ctx context.Context, callerID, tweetID string) (*ToggleResult, error) {
	return s.toggle(ctx, callerID, models.TargetTweet, tweetID, s.TweetDAO.IsExist)
}

// LikedVideos 调用者点赞过的视频，最近点赞在前，已删除的视频跳过
func (s *LikeService) LikedVideos(ctx context.Context, callerID string) ([]*types.LikedVideo, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	relations, err := s.RelationDAO.ListByActor(ctx, callerID, models.TargetVideo)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(relations))
	for _, r := range relations {
		ids = append(ids, r.TargetID)
	}
	videos, err := s.VideoDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	ownerIDs := make([]string, 0, len(videos))
	byID := make(map[string]*models.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
		ownerIDs = append(ownerIDs, v.OwnerID)
	}
	owners, err := s.UserDAO.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*types.LikedVideo, 0, len(videos))
	for _, r := range relations {
		v, ok := byID[r.TargetID]
		if !ok {
			continue
		}
		out = append(out, &types.LikedVideo{LikedAt: r.CreatedAt, Video: types.NewVideoItem(v, owners[v.OwnerID])})
	}
	return out, nil
}

type existFunc func(ctx context.Context, where string, args ...any) (bool, error)

// toggle 先校验参数与目标存在，再交给开关引擎
func (s *LikeService) toggle(ctx context.Context, callerID string, kind models.TargetKind, targetID string, exist existFunc) (*ToggleResult, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := requireID(targetID, string(kind)+" id"); err != nil {
		return nil, err
	}
	ok, err := exist(ctx, "id = ?", targetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errno.NotFoundf("%s not found", kind)
	}
	return s.Toggle.Toggle(ctx, callerID, kind, targetID)
}
