package handler

import (
	"Vidhub/pkg/errno"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const maxUploadSize int64 = 512 << 20

// saveUpload 将表单文件落盘到临时目录，字段缺失或请求不是 multipart 时返回空路径
// 返回的 cleanup 在请求结束后删除临时文件
func saveUpload(c *gin.Context, field string) (string, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", func() {}, nil
		}
		return "", func() {}, errno.InvalidArgumentf("invalid %s upload", field)
	}
	if header.Size <= 0 || header.Size > maxUploadSize {
		return "", func() {}, errno.InvalidArgumentf("%s size invalid", field)
	}

	dir, err := os.MkdirTemp("", "vidhub-upload-*")
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	dst := filepath.Join(dir, "upload"+filepath.Ext(filepath.Base(header.Filename)))
	if err := c.SaveUploadedFile(header, dst); err != nil {
		cleanup()
		return "", func() {}, err
	}
	return dst, cleanup, nil
}

