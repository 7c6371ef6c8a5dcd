package billing

import (
	"context"

	"happyhouse/internal/domain"
)

// RoomRepository resolves the room being billed.
type RoomRepository interface {
	GetByID(ctx context.Context, id, ownerID int64) (*domain.Room, error)
}

// RentalRepository resolves the lease history behind a quote.
type RentalRepository interface {
	LatestForRoom(ctx context.Context, roomID, ownerID int64) (*domain.Rental, error)
}

// SettlementStore applies the three settlement effects (invoice insert,
// revenue-bucket upsert, room reset) atomically.
type SettlementStore interface {
	Settle(ctx context.Context, inv *domain.Invoice) error
}
