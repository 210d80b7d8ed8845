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

type SubscriptionHandler struct {
	Config              *config.Config
	SubscriptionService service.ISubscriptionService
}

func (h *SubscriptionHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	subs := r.Group("/v1/subscriptions", authorize)
	subs.POST("/c/:channelId", context.Wrap(h.ToggleSubscription))
	subs.GET("/c/:channelId", context.Wrap(h.ChannelSubscribers))
	subs.GET("/u/:subscriberId", context.Wrap(h.SubscribedChannels))
}

// ToggleSubscription 订阅/取消订阅频道
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	result, err := h.SubscriptionService.ToggleSubscription(c.Request.Context(), userID, c.Param("channelId"))
	if err != nil {
		return err
	}
	toggleReply(c, result, "Subscribed successfully", "Unsubscribed successfully")
	return nil
}

func (h *SubscriptionHandler) ChannelSubscribers(c *gin.Context) error {
	subscribers, err := h.SubscriptionService.ChannelSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Channel subscribers fetched successfully", subscribers)
	return nil
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) error {
	channels, err := h.SubscriptionService.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Subscribed channels fetched successfully", channels)
	return nil
}
