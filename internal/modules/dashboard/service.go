package dashboard

import (
	"context"
	"log"
	"time"

	"happyhouse/internal/domain"
)

type Service struct {
	rooms    RoomRepository
	invoices InvoiceRepository
	revenue  RevenueRepository
	now      func() time.Time
}

func NewService(rooms RoomRepository, invoices InvoiceRepository, revenue RevenueRepository) *Service {
	return &Service{
		rooms:    rooms,
		invoices: invoices,
		revenue:  revenue,
		now:      time.Now,
	}
}

// Stats computes the headline numbers. The unpaid-invoice probe is
// supplementary data: when it fails the card degrades to zero with a warning
// instead of taking the whole dashboard down.
func (s *Service) Stats(ctx context.Context, ownerID int64) (*Stats, error) {
	roomList, err := s.rooms.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	st := &Stats{Rooms: len(roomList)}
	houses := make(map[string]struct{})
	for _, r := range roomList {
		if r.House != "" {
			houses[r.House] = struct{}{}
		}
		if r.Occupied() {
			st.OccupiedRooms++
		}
	}
	st.Houses = len(houses)

	unpaid, err := s.invoices.CountUnpaid(ctx, ownerID)
	if err != nil {
		log.Printf("dashboard_stats_warn owner_id=%d probe=unpaid_invoices error=%q", ownerID, err.Error())
	} else {
		st.UnpaidCount = unpaid
	}

	return st, nil
}

// Revenue buckets the owner's paid invoices at the requested granularity.
// Always replayed from the invoice log, never from the cached projection.
func (s *Service) Revenue(ctx context.Context, ownerID int64, g Granularity) ([]Point, error) {
	invoices, err := s.invoices.ListPaid(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Bucketize(invoices, g, s.now()), nil
}

// GrowthSummary reports period-over-period revenue movement for the stock
// trailing windows.
func (s *Service) GrowthSummary(ctx context.Context, ownerID int64) ([]GrowthPoint, error) {
	invoices, err := s.invoices.ListPaid(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return Growth(invoices, DefaultWindows, s.now()), nil
}

// MonthlyProjection serves the monthly chart feed from the cached buckets.
// Supplementary data: a missing projection degrades to empty with a warning.
func (s *Service) MonthlyProjection(ctx context.Context, ownerID int64) ([]domain.RevenueBucket, error) {
	buckets, err := s.revenue.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("dashboard_stats_warn owner_id=%d probe=revenue_projection error=%q", ownerID, err.Error())
		return []domain.RevenueBucket{}, nil
	}
	return buckets, nil
}
