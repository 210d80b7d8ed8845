package handler

import (
	"net/http"

	"Vidhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// bindOptional 请求体可以为空，稀疏更新时所有字段都可省略
func bindOptional(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBind(obj); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	return nil
}
