package nursery

import "errors"

var (
	ErrPlantNotFound      = errors.New("plant not found")
	ErrNotReadyForSale    = errors.New("plant is not ready for sale")
	ErrDisplayFull        = errors.New("display area is full")
	ErrGrowingFull        = errors.New("growing area is full")
	ErrInvalidPosition    = errors.New("invalid grid position")
	ErrSlotOccupied       = errors.New("grid slot is occupied")
	ErrInvalidDays        = errors.New("days must be positive")
	ErrUnknownArea        = errors.New("unknown inventory area")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidParticipant = errors.New("invalid participant")
	ErrAlreadyRegistered  = errors.New("participant already registered")
)
