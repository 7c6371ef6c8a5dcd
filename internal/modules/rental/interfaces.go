package rental

import (
	"context"

	"happyhouse/internal/domain"
)

// RentalRepository persists lease records and the occupancy claim.
type RentalRepository interface {
	CreateClaiming(ctx context.Context, rental *domain.Rental) error
	ListForRoom(ctx context.Context, roomID, ownerID int64) ([]domain.Rental, error)
}

// RoomRepository supplies the vacancy state behind the intake form.
type RoomRepository interface {
	GetByID(ctx context.Context, id, ownerID int64) (*domain.Room, error)
	ListVacant(ctx context.Context, ownerID int64) ([]domain.Room, error)
}
