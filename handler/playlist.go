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

type PlaylistHandler struct {
	Config          *config.Config
	PlaylistService service.IPlaylistService
}

func (h *PlaylistHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	playlist := r.Group("/v1/playlist", authorize)
	playlist.POST("", context.Wrap(h.CreatePlaylist))
	playlist.GET("/user/:userId", context.Wrap(h.UserPlaylists))
	playlist.GET("/:playlistId", context.Wrap(h.GetPlaylist))
	playlist.PATCH("/:playlistId", context.Wrap(h.UpdatePlaylist))
	playlist.DELETE("/:playlistId", context.Wrap(h.DeletePlaylist))
	playlist.PATCH("/add/:videoId/:playlistId", context.Wrap(h.AddVideo))
	playlist.PATCH("/remove/:videoId/:playlistId", context.Wrap(h.RemoveVideo))
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	playlist, err := h.PlaylistService.CreatePlaylist(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusCreated, "Playlist created successfully", playlist)
	return nil
}

func (h *PlaylistHandler) UserPlaylists(c *gin.Context) error {
	playlists, err := h.PlaylistService.UserPlaylists(c.Request.Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "User playlists fetched successfully", playlists)
	return nil
}

func (h *PlaylistHandler) GetPlaylist(c *gin.Context) error {
	playlist, err := h.PlaylistService.GetPlaylist(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Playlist fetched successfully", playlist)
	return nil
}

func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdatePlaylistRequest
	if err := bindOptional(c, &req); err != nil {
		return err
	}
	playlist, err := h.PlaylistService.UpdatePlaylist(c.Request.Context(), c.Param("playlistId"), userID, &req)
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Playlist updated successfully", playlist)
	return nil
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	if err := h.PlaylistService.DeletePlaylist(c.Request.Context(), c.Param("playlistId"), userID); err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Playlist deleted successfully", nil)
	return nil
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	playlist, err := h.PlaylistService.AddVideo(c.Request.Context(), c.Param("playlistId"), userID, c.Param("videoId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Video added to playlist successfully", playlist)
	return nil
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	playlist, err := h.PlaylistService.RemoveVideo(c.Request.Context(), c.Param("playlistId"), userID, c.Param("videoId"))
	if err != nil {
		return err
	}
	response.Message(c, http.StatusOK, "Video removed from playlist successfully", playlist)
	return nil
}
