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

type VideoHandler struct {
	Config       *config.Config
	VideoService service.IVideoService
}

func (h *VideoHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	videos := r.Group("/v1/videos", authorize)
	videos.GET("", context.Wrap(h.ListVideos))
	videos.POST("", context.Wrap(h.PublishVideo))
	videos.GET("/:videoId", context.Wrap(h.GetVideo))
	videos.PATCH("/:videoId", context.Wrap(h.UpdateVideo))
	videos.DELETE("/:videoId", context.Wrap(h.DeleteVideo))
	videos.PATCH("/toggle/publish/:videoId", context.Wrap(h.TogglePublish))
	videos.POST("/:videoId/views", context.Wrap(h.RecordView))
}

// ListVideos 视频列表
func (h *VideoHandler) ListVideos(c *gin.Context) error {
	var query types.ListVideosQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.VideoService.ListVideos(c.Request.Context(), &query)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Videos fetched successfully", resp)
	return nil
}

// PublishVideo 上传并发布视频，表单字段 videoFile 必填，thumbnail 可选
func (h *VideoHandler) PublishVideo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	videoPath, cleanVideo, err := saveUpload(c, "videoFile")
	if err != nil {
		return err
	}
	defer cleanVideo()
	thumbPath, cleanThumb, err := saveUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer cleanThumb()

	req.VideoPath, req.ThumbnailPath = videoPath, thumbPath
	video, err := h.VideoService.PublishVideo(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusCreated, "Video published successfully", video)
	return nil
}

// GetVideo 视频详情
func (h *VideoHandler) GetVideo(c *gin.Context) error {
	video, err := h.VideoService.GetVideo(c.Request.Context(), c.Param("videoId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Video fetched successfully", video)
	return nil
}

// UpdateVideo 修改标题、描述，可附带新封面
func (h *VideoHandler) UpdateVideo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdateVideoRequest
	if err := bindOptional(c, &req); err != nil {
		return err
	}
	thumbPath, cleanup, err := saveUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer cleanup()

	video, err := h.VideoService.UpdateVideo(c.Request.Context(), c.Param("videoId"), userID, &req, thumbPath)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Video updated successfully", video)
	return nil
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	if err := h.VideoService.DeleteVideo(c.Request.Context(), c.Param("videoId"), userID); err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Video deleted successfully", nil)
	return nil
}

func (h *VideoHandler) TogglePublish(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	video, err := h.VideoService.TogglePublish(c.Request.Context(), c.Param("videoId"), userID)
	if err != nil {
		return err
	}
	msg := "Video unpublished successfully"
	if video.IsPublished {
		msg = "Video published successfully"
	}
	response.Message(c, http.StatusOK, msg, video)
	return nil
}

// RecordView 播放上报
func (h *VideoHandler) RecordView(c *gin.Context) error {
	if err := h.VideoService.RecordView(c.Request.Context(), c.Param("videoId")); err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "View recorded", nil)
	return nil
}
