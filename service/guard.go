package service

import (
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/pkg/ident"
)

// Authorize 校验调用者是否为实体所有者，必须在实体查询成功之后调用
func Authorize(entity models.Owned, callerID string) error {
	if entity.GetOwnerID() != callerID {
		return errno.ErrForbidden
	}
	return nil
}

// requireCaller 调用者身份缺失视为未登录，格式错误视为参数错误
func requireCaller(callerID string) error {
	if callerID == "" {
		return errno.Unauthorizedf("unauthorized request")
	}
	if !ident.Valid(callerID) {
		return errno.InvalidArgumentf("invalid caller id")
	}
	return nil
}

func requireID(id, name string) error {
	if !ident.Valid(id) {
		return errno.InvalidArgumentf("invalid %s", name)
	}
	return nil
}
