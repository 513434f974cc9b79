package caretasks

import "nursery/internal/domain/care"

type Mode string

const (
	ModeNext Mode = "next"
	ModeAll  Mode = "all"
)

type RunRequest struct {
	Mode Mode `json:"mode"`
}

type RunResponse struct {
	Executed []care.Task `json:"executed"`
	Pending  int         `json:"pending"`
}

type PendingResponse struct {
	Tasks []care.Task `json:"tasks"`
}
