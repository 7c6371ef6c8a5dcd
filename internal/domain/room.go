package domain

import "time"

type RoomStatus string

const (
	RoomVacant   RoomStatus = "vacant"
	RoomOccupied RoomStatus = "occupied"
)

// NoTenant marks a room that has no current renter.
const NoTenant = "-"

type Room struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"owner_id"`
	Name      string     `json:"name" validate:"required"`
	House     string     `json:"house" validate:"required"`
	Status    RoomStatus `json:"status"`
	Tenant    string     `json:"tenant"`
	Price     int64      `json:"price" validate:"gte=0"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Occupied reports whether the room currently has a renter.
func (r *Room) Occupied() bool {
	return r.Status == RoomOccupied
}
