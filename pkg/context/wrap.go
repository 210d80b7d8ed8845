package context

import (
	"Vidhub/pkg/errno"
	"Vidhub/pkg/log"
	"Vidhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			be := response.FromError(err)
			if be.Code >= 500 {
				log.L.Error("request failed",
					zap.String("path", c.FullPath()),
					zap.String("method", c.Request.Method),
					zap.Error(err),
				)
			}
			response.Fail(c, be.Code, be.Msg)
		}
	}
}

// GetUserID 读取鉴权中间件写入的调用者 ID，缺失视为未登录
func GetUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return "", errno.Unauthorizedf("unauthorized request")
	}

	uid, ok := v.(string)
	if !ok || uid == "" {
		return "", errno.Unauthorizedf("unauthorized request")
	}

	return uid, nil
}
