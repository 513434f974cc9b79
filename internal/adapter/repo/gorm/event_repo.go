package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"nursery/internal/adapter/repo/gorm/model"
	"nursery/internal/app/ports"
	"nursery/internal/domain/nursery"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, events []nursery.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.CareEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		plantID := e.PlantID
		if plantID == "" {
			plantID = nursery.FacilityScope
		}
		rows = append(rows, model.CareEvent{
			PlantID:    plantID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&rows).Error
}

// List orders by occurred_at then id, both descending, so events sharing a
// timestamp keep their append order reversed.
func (r EventRepo) List(ctx context.Context, q ports.EventQuery) ([]nursery.Event, error) {
	rows := []model.CareEvent{}
	query := getDBFromCtx(ctx, r.db).WithContext(ctx).Model(&model.CareEvent{})
	if q.PlantID != "" {
		query = query.Where(&model.CareEvent{PlantID: q.PlantID})
	}
	if !q.OccurredFrom.IsZero() {
		query = query.Where("occurred_at >= ?", q.OccurredFrom)
	}
	if !q.OccurredTo.IsZero() {
		query = query.Where("occurred_at <= ?", q.OccurredTo)
	}
	query = query.Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "occurred_at"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: true},
		},
	})
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]nursery.Event, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, nursery.Event{
			PlantID:    row.PlantID,
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
