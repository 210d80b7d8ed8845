package service

import (
	"Vidhub/dao"
	"Vidhub/dao/cache"
	"Vidhub/models"
	"Vidhub/pkg/errno"
	"Vidhub/pkg/log"
	"context"
	"errors"

	"go.uber.org/zap"
)

type ToggleOutcome string

const (
	ToggleCreated ToggleOutcome = "created"
	ToggleRemoved ToggleOutcome = "removed"
)

// ToggleResult Removed 时 Relation 为 nil
type ToggleResult struct {
	Outcome  ToggleOutcome
	Relation *models.Relation
}

// ILocker 分布式锁，释放函数必须可安全重复调用
type ILocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// ToggleEngine 点赞与订阅共用的开关算法
// 存在则删除，不存在则创建；唯一索引是最终的判定依据，锁只用于减少冲突
type ToggleEngine struct {
	RelationDAO *dao.RelationDAO
	Locker      ILocker
	Events      IEventRecorder
}

func (e *ToggleEngine) Toggle(ctx context.Context, actorID string, kind models.TargetKind, targetID string) (*ToggleResult, error) {
	if err := requireCaller(actorID); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, errno.InvalidArgumentf("unknown target kind %q", kind)
	}
	if err := requireID(targetID, string(kind)+" id"); err != nil {
		return nil, err
	}
	if kind == models.TargetChannel && actorID == targetID {
		return nil, errno.InvalidArgumentf("you cannot subscribe to yourself")
	}

	if e.Locker != nil {
		unlock, err := e.Locker.Lock(ctx, cache.ToggleKey(actorID, string(kind), targetID))
		if err != nil {
			log.L.Warn("toggle lock unavailable, relying on unique index",
				zap.String("actor", actorID), zap.String("kind", string(kind)), zap.Error(err))
		} else {
			defer unlock()
		}
	}

	result, err := e.flip(ctx, actorID, kind, targetID)
	if err != nil {
		return nil, err
	}

	if e.Events != nil {
		e.Events.Record(ctx, actorID, toggleAction(kind, result.Outcome), kind, targetID, nil)
	}
	return result, nil
}

func (e *ToggleEngine) flip(ctx context.Context, actorID string, kind models.TargetKind, targetID string) (*ToggleResult, error) {
	exists, err := e.RelationDAO.Exists(ctx, actorID, kind, targetID)
	if err != nil {
		return nil, err
	}

	if exists {
		err := e.RelationDAO.Delete(ctx, actorID, kind, targetID)
		// 并发删除已完成，状态一致
		if err != nil && !errors.Is(err, dao.ErrRelationNotFound) {
			return nil, err
		}
		return &ToggleResult{Outcome: ToggleRemoved}, nil
	}

	relation, err := e.RelationDAO.Create(ctx, actorID, kind, targetID)
	if errors.Is(err, dao.ErrDuplicateRelation) {
		// 并发创建已完成，返回已存在的关系
		relation, err = e.RelationDAO.Get(ctx, actorID, kind, targetID)
	}
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Outcome: ToggleCreated, Relation: relation}, nil
}

func toggleAction(kind models.TargetKind, outcome ToggleOutcome) string {
	noun := "like"
	if kind == models.TargetChannel {
		noun = "subscription"
	}
	return noun + "." + string(outcome)
}
