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

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	CreateTweet(ctx context.Context, ownerID string, req *types.CreateTweetRequest) (*models.Tweet, error)
	GetTweet(ctx context.Context, tweetID string) (*types.TweetItem, error)
	UserTweets(ctx context.Context, userID string) ([]*types.TweetItem, error)
	UpdateTweet(ctx context.Context, tweetID, callerID string, req *types.UpdateTweetRequest) (*models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, callerID string) error
}

type TweetService struct {
	TweetDAO *dao.TweetDAO
	UserDAO  *dao.Users
	Events   IEventRecorder
}

func (s *TweetService) CreateTweet(ctx context.Context, ownerID string, req *types.CreateTweetRequest) (*models.Tweet, error) {
	if err := requireCaller(ownerID); err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, errno.InvalidArgumentf("tweet content cannot be empty")
	}

	tweet := &models.Tweet{ID: ident.New(), OwnerID: ownerID, Content: content}
	if err := s.TweetDAO.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) GetTweet(ctx context.Context, tweetID string) (*types.TweetItem, error) {
	if err := requireID(tweetID, "tweet id"); err != nil {
		return nil, err
	}
	tweet, err := s.fetch(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	owner, err := s.UserDAO.FindByID(ctx, tweet.OwnerID)
	if err != nil {
		return nil, err
	}
	return types.NewTweetItem(tweet, owner), nil
}

// UserTweets 用户动态，最新在前
func (s *TweetService) UserTweets(ctx context.Context, userID string) ([]*types.TweetItem, error) {
	if err := requireID(userID, "user id"); err != nil {
		return nil, err
	}
	tweets, err := s.TweetDAO.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	owner, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.TweetItem, 0, len(tweets))
	for _, t := range tweets {
		items = append(items, types.NewTweetItem(t, owner))
	}
	return items, nil
}

// UpdateTweet 内容为空时保持原值
func (s *TweetService) UpdateTweet(ctx context.Context, tweetID, callerID string, req *types.UpdateTweetRequest) (*models.Tweet, error) {
	tweet, err := s.fetchOwned(ctx, tweetID, callerID)
	if err != nil {
		return nil, err
	}
	content := patchText(req.Content)
	if content == nil {
		return tweet, nil
	}

	tweet.Content = *content
	if err := s.TweetDAO.Save(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// DeleteTweet 删除动态及其点赞
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID, callerID string) error {
	tweet, err := s.fetchOwned(ctx, tweetID, callerID)
	if err != nil {
		return err
	}
	if err := s.TweetDAO.DeleteCascade(ctx, tweet.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundf("tweet not found")
		}
		return err
	}
	if s.Events != nil {
		s.Events.Record(ctx, callerID, "tweet.deleted", models.TargetTweet, tweet.ID, nil)
	}
	return nil
}

func (s *TweetService) fetch(ctx context.Context, tweetID string) (*models.Tweet, error) {
	tweet, err := s.TweetDAO.FindByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, errno.NotFoundf("tweet not found")
	}
	return tweet, nil
}

func (s *TweetService) fetchOwned(ctx context.Context, tweetID, callerID string) (*models.Tweet, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}
	if err := requireID(tweetID, "tweet id"); err != nil {
		return nil, err
	}
	tweet, err := s.fetch(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(tweet, callerID); err != nil {
		return nil, errno.Forbiddenf("you are not authorized to modify this tweet")
	}
	return tweet, nil
}
