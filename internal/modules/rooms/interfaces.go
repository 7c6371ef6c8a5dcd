package rooms

import (
	"context"

	"happyhouse/internal/domain"
)

// RoomRepository is the persistence boundary for room inventory.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id, ownerID int64) (*domain.Room, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Room, error)
	Update(ctx context.Context, id, ownerID int64, fields map[string]any) error
	Delete(ctx context.Context, id, ownerID int64) error
}
