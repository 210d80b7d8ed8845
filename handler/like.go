package handler

import (
	"Vidhub/config"
	"Vidhub/middleware"
	"Vidhub/pkg/context"
	"Vidhub/pkg/response"
	"Vidhub/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *LikeHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	likes := r.Group("/v1/likes", authorize)
	likes.POST("/toggle/v/:videoId", context.Wrap(h.ToggleVideoLike))
	likes.POST("/toggle/c/:commentId", context.Wrap(h.ToggleCommentLike))
	likes.POST("/toggle/t/:tweetId", context.Wrap(h.ToggleTweetLike))
	likes.GET("/videos", context.Wrap(h.LikedVideos))
}

// ToggleVideoLike 点赞/取消点赞视频
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	result, err := h.LikeService.ToggleVideoLike(c.Request.Context(), userID, c.Param("videoId"))
	if err != nil {
		return err
	}
	toggleReply(c, result, "Video liked successfully", "Video unliked successfully")
	return nil
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	result, err := h.LikeService.ToggleCommentLike(c.Request.Context(), userID, c.Param("commentId"))
	if err != nil {
		return err
	}
	toggleReply(c, result, "Comment liked successfully", "Comment unliked successfully")
	return nil
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	result, err := h.LikeService.ToggleTweetLike(c.Request.Context(), userID, c.Param("tweetId"))
	if err != nil {
		return err
	}
	toggleReply(c, result, "Tweet liked successfully", "Tweet unliked successfully")
	return nil
}

// LikedVideos 当前用户点赞过的视频
func (h *LikeHandler) LikedVideos(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videos, err := h.LikeService.LikedVideos(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Liked videos fetched successfully", videos)
	return nil
}
