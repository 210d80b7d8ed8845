package handler

import (
	"Vidhub/pkg/response"
	"Vidhub/service"
	"Vidhub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

// toggleReply 新建返回 201 与关系，删除返回 200
func toggleReply(c *gin.Context, result *service.ToggleResult, createdMsg, removedMsg string) {
	if result.Outcome == service.ToggleCreated {
		response.Message(c, http.StatusCreated, createdMsg, &types.ToggleResponse{
			Outcome:  string(result.Outcome),
			Relation: result.Relation,
		})
		return
	}
	response.Message(c, http.StatusOK, removedMsg, &types.ToggleResponse{Outcome: string(result.Outcome)})
}
