package middleware

import (
	"net/http"
	"strings"

	"Vidhub/pkg/context"
	"Vidhub/pkg/jwt"
	"Vidhub/pkg/log"
	"Vidhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer 令牌并将调用者 ID 写入上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TokenTypeAccess, parts[1])
		if err != nil {
			log.L.Debug("parse token failed", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if claims.UserID == "" {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}
