package daycycle

import "nursery/internal/domain/nursery"

type Request struct {
	Days int `json:"days"`
}

type Response struct {
	Result  nursery.DayResult `json:"result"`
	Summary nursery.Summary   `json:"summary"`
}
