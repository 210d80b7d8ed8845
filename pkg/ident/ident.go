package ident

import (
	"github.com/google/uuid"
)

// New 生成实体/关系 ID，统一使用 36 位规范 UUID 字符串
func New() string {
	return uuid.NewString()
}

// Valid 校验 ID 是否为 36 位小写规范格式，大写形式视为非法，避免同一实体出现两种写法
func Valid(id string) bool {
	if len(id) != 36 {
		return false
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return u.String() == id
}
