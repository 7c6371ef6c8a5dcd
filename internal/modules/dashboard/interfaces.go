package dashboard

import (
	"context"

	"happyhouse/internal/domain"
)

type RoomRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Room, error)
}

type InvoiceRepository interface {
	CountUnpaid(ctx context.Context, ownerID int64) (int64, error)
	ListPaid(ctx context.Context, ownerID int64) ([]domain.Invoice, error)
}

type RevenueRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.RevenueBucket, error)
}
