package transfer

import "nursery/internal/domain/nursery"

type RelocateResponse struct {
	Moves []nursery.Move `json:"moves"`
}

type TransferRequest struct {
	Name string `json:"name"`
}

type TransferResponse struct {
	Move nursery.Move `json:"move"`
}

type PurchaseRequest struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
}

type PurchaseResponse struct {
	Sale     nursery.Sale         `json:"sale"`
	Customer nursery.CustomerView `json:"customer"`
}

type CustomerRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StaffRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
