package service

import (
	"Vidhub/dao"
	"Vidhub/models"
	"Vidhub/pkg/ident"
	"Vidhub/pkg/log"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// IEventPublisher 事件外发，实现为 rocketmq 生产者
type IEventPublisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

type IEventRecorder interface {
	// Record 尽力记录，失败只打日志，不影响主流程
	Record(ctx context.Context, actorID, action string, kind models.TargetKind, targetID string, payload map[string]any)
}

var _ IEventRecorder = (*EventRecorder)(nil)

// EventRecorder 互动事件落库并投递到消息队列
type EventRecorder struct {
	EventDAO  *dao.EventDAO
	Publisher IEventPublisher
}

func (r *EventRecorder) Record(ctx context.Context, actorID, action string, kind models.TargetKind, targetID string, payload map[string]any) {
	event := &models.EngagementEvent{
		ID:         ident.New(),
		ActorID:    actorID,
		Action:     action,
		TargetKind: string(kind),
		TargetID:   targetID,
		CreatedAt:  time.Now(),
	}
	if len(payload) > 0 {
		raw, err := json.Marshal(payload)
		if err != nil {
			log.L.Warn("marshal event payload", zap.String("action", action), zap.Error(err))
		} else {
			event.Payload = datatypes.JSON(raw)
		}
	}

	if err := r.EventDAO.Append(ctx, event); err != nil {
		log.L.Warn("append engagement event failed",
			zap.String("action", action),
			zap.String("target_id", targetID),
			zap.Error(err),
		)
		return
	}

	if r.Publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := r.Publisher.Publish(ctx, event.TargetID, body); err != nil {
		log.L.Warn("publish engagement event failed", zap.String("event_id", event.ID), zap.Error(err))
	}
}
