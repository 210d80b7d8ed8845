package handler

import (
	"Vidhub/config"
	"Vidhub/middleware"
	"Vidhub/pkg/context"
	"Vidhub/pkg/response"
	"Vidhub/service"
	"Vidhub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	Config       *config.Config
	TweetService service.ITweetService
}

func (h *TweetHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	tweets := r.Group("/v1/tweets", authorize)
	tweets.POST("", context.Wrap(h.CreateTweet))
	tweets.GET("/user/:userId", context.Wrap(h.UserTweets))
	tweets.GET("/:tweetId", context.Wrap(h.GetTweet))
	tweets.PATCH("/:tweetId", context.Wrap(h.UpdateTweet))
	tweets.DELETE("/:tweetId", context.Wrap(h.DeleteTweet))
}

func (h *TweetHandler) CreateTweet(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	tweet, err := h.TweetService.CreateTweet(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusCreated, "Tweet created successfully", tweet)
	return nil
}

func (h *TweetHandler) UserTweets(c *gin.Context) error {
	tweets, err := h.TweetService.UserTweets(c.Request.Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "User tweets fetched successfully", tweets)
	return nil
}

func (h *TweetHandler) GetTweet(c *gin.Context) error {
	tweet, err := h.TweetService.GetTweet(c.Request.Context(), c.Param("tweetId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Tweet fetched successfully", tweet)
	return nil
}

func (h *TweetHandler) UpdateTweet(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdateTweetRequest
	if err := bindOptional(c, &req); err != nil {
		return err
	}
	tweet, err := h.TweetService.UpdateTweet(c.Request.Context(), c.Param("tweetId"), userID, &req)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Tweet updated successfully", tweet)
	return nil
}

func (h *TweetHandler) DeleteTweet(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	if err := h.TweetService.DeleteTweet(c.Request.Context(), c.Param("tweetId"), userID); err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Tweet deleted successfully", nil)
	return nil
}
