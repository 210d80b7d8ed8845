package response

import (
	"Vidhub/pkg/errno"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// StatusOf 业务错误分类 -> HTTP 状态码，只在边界层使用
func StatusOf(kind errno.Kind) int {
	switch kind {
	case errno.InvalidArgument:
		return http.StatusBadRequest
	case errno.Unauthorized:
		return http.StatusUnauthorized
	case errno.Forbidden:
		return http.StatusForbidden
	case errno.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError 将任意错误转换为 BizError，未分类错误不向客户端暴露细节
func FromError(err error) *BizError {
	var be *BizError
	if errors.As(err, &be) {
		return be
	}
	kind := errno.KindOf(err)
	if kind == errno.Internal {
		return NewError(http.StatusInternalServerError, "internal error")
	}
	return NewError(StatusOf(kind), err.Error())
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
