package model

import (
	"time"
)

const TableNameCareEvent = "care_events"

// CareEvent mapped from table <care_events>
type CareEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	PlantID    string    `gorm:"column:plant_id;not null" json:"plant_id"`
	Type       string    `gorm:"column:type;not null" json:"type"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	Payload    []byte    `gorm:"column:payload;not null" json:"payload"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

// TableName CareEvent's table name
func (*CareEvent) TableName() string {
	return TableNameCareEvent
}
