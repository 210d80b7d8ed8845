package dao

import (
	"Vidhub/models"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByIDs 批量查询用户资料
func (u *Users) FindByIDs(ctx context.Context, ids []string) (map[string]*models.User, error) {
	result := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.User
	if err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "dao.Users.FindByIDs")
	}
	for _, item := range users {
		result[item.ID] = item
	}
	return result, nil
}
