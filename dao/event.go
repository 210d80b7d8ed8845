package dao

import (
	"Vidhub/models"
	"context"

	"gorm.io/gorm"
)

type EventDAO struct {
	Repo[models.EngagementEvent]
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{Repo: NewRepo[models.EngagementEvent](db)}
}

// Append 追加一条事件
func (d *EventDAO) Append(ctx context.Context, event *models.EngagementEvent) error {
	return d.Create(ctx, event)
}
