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

type DashboardHandler struct {
	Config           *config.Config
	DashboardService service.IDashboardService
}

func (h *DashboardHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	dashboard := r.Group("/v1/dashboard", authorize)
	dashboard.GET("/stats", context.Wrap(h.ChannelStats))
	dashboard.GET("/videos", context.Wrap(h.ChannelVideos))
}

// ChannelStats 当前用户频道统计
func (h *DashboardHandler) ChannelStats(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	stats, err := h.DashboardService.ChannelStats(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Channel statistics fetched successfully", stats)
	return nil
}

// ChannelVideos 当前用户频道的全部视频
func (h *DashboardHandler) ChannelVideos(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	videos, err := h.DashboardService.ChannelVideos(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Channel videos fetched successfully", videos)
	return nil
}
