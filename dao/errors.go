package dao

import (
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateRelation 唯一键冲突：关系已存在（并发重复创建）
	ErrDuplicateRelation = errors.New("dao: relation already exists")
	// ErrRelationNotFound 删除时关系不存在
	ErrRelationNotFound = errors.New("dao: relation not found")
)

const mysqlDuplicateEntry = 1062

// isDuplicateKey 判断是否唯一索引冲突，兼容 mysql 与 sqlite 驱动
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
