package domain

import "time"

// Rental is one lease record. Rentals are immutable once created; a room may
// accumulate several of them over time as renters come and go.
type Rental struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	RoomID    int64     `json:"room_id" validate:"required"`
	FullName  string    `json:"full_name" validate:"required,min=3"`
	Phone     string    `json:"phone" validate:"required,numeric,min=10"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Deposit   int64     `json:"deposit" validate:"required,gt=0"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
