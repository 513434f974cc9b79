package replay

import "nursery/internal/domain/nursery"

type Request struct {
	PlantID      string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// PlantHistory is the plant's last known situation as told by the journal.
type PlantHistory struct {
	PlantID   string  `json:"plant_id"`
	Name      string  `json:"name,omitempty"`
	State     string  `json:"state,omitempty"`
	Area      string  `json:"area,omitempty"`
	Day       int     `json:"day"`
	Alerts    int     `json:"alerts"`
	CareTasks int     `json:"care_tasks"`
	Sold      bool    `json:"sold"`
	Customer  string  `json:"customer_id,omitempty"`
	SalePrice float64 `json:"sale_price,omitempty"`
	Removed   bool    `json:"removed"`
}

type Response struct {
	Events  []nursery.Event `json:"events"`
	History *PlantHistory   `json:"history,omitempty"`
}
