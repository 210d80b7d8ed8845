package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Repo 通用单表操作，各 DAO 通过嵌入复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// FindByID 主键查询，不存在时返回 nil, nil
func (r Repo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindByWhere(ctx, "id = ?", id)
}

// FindByWhere 条件查询单条，不存在时返回 nil, nil
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "dao.Repo.FindByWhere %T", item)
	}
	return &item, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "dao.Repo.IsExist")
	}
	return count > 0, nil
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return errors.Wrap(r.Db.WithContext(ctx).Create(item).Error, "dao.Repo.Create")
}

// Save 整行写回，并发修改以最后一次写入为准
func (r Repo[T]) Save(ctx context.Context, item *T) error {
	return errors.Wrap(r.Db.WithContext(ctx).Save(item).Error, "dao.Repo.Save")
}

func (r Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
