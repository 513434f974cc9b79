package transfer

import (
	"context"
	"errors"
	"strings"

	"nursery/internal/app/ports"
	"nursery/internal/app/shared/journal"
	"nursery/internal/domain/nursery"
)

var ErrInvalidRequest = errors.New("invalid transfer request")

// UseCase moves stock between areas and out to customers, and keeps the
// people registry.
type UseCase struct {
	Facility *nursery.Facility
	Journal  journal.Recorder
}

func (u UseCase) Relocate(ctx context.Context) (RelocateResponse, error) {
	if u.Facility == nil {
		return RelocateResponse{}, ports.ErrNotConfigured
	}
	moves, events := u.Facility.Relocate()
	u.Journal.Publish(ctx, events)
	if moves == nil {
		moves = []nursery.Move{}
	}
	return RelocateResponse{Moves: moves}, nil
}

func (u UseCase) Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error) {
	if u.Facility == nil {
		return TransferResponse{}, ports.ErrNotConfigured
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return TransferResponse{}, ErrInvalidRequest
	}
	move, events, err := u.Facility.Transfer(name)
	if err != nil {
		return TransferResponse{}, err
	}
	u.Journal.Publish(ctx, events)
	return TransferResponse{Move: move}, nil
}

func (u UseCase) Purchase(ctx context.Context, req PurchaseRequest) (PurchaseResponse, error) {
	if u.Facility == nil {
		return PurchaseResponse{}, ports.ErrNotConfigured
	}
	customerID := strings.TrimSpace(req.CustomerID)
	name := strings.TrimSpace(req.Name)
	if customerID == "" || name == "" {
		return PurchaseResponse{}, ErrInvalidRequest
	}
	sale, events, err := u.Facility.Purchase(customerID, name)
	if err != nil {
		return PurchaseResponse{}, err
	}
	u.Journal.Publish(ctx, events)
	customer, err := u.Facility.Customer(customerID)
	if err != nil {
		return PurchaseResponse{}, err
	}
	return PurchaseResponse{Sale: sale, Customer: customer}, nil
}

func (u UseCase) RegisterCustomer(_ context.Context, req CustomerRequest) (nursery.CustomerView, error) {
	if u.Facility == nil {
		return nursery.CustomerView{}, ports.ErrNotConfigured
	}
	return u.Facility.RegisterCustomer(strings.TrimSpace(req.ID), strings.TrimSpace(req.Name))
}

func (u UseCase) RegisterStaff(_ context.Context, req StaffRequest) (nursery.Staff, error) {
	if u.Facility == nil {
		return nursery.Staff{}, ports.ErrNotConfigured
	}
	s := nursery.Staff{
		ID:   strings.TrimSpace(req.ID),
		Name: strings.TrimSpace(req.Name),
		Role: nursery.StaffRole(strings.ToLower(strings.TrimSpace(req.Role))),
	}
	if err := u.Facility.RegisterStaff(s); err != nil {
		return nursery.Staff{}, err
	}
	return s, nil
}
