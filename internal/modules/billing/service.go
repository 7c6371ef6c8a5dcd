package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"happyhouse/internal/domain"
	"happyhouse/internal/repository"
)

type Service struct {
	rooms   RoomRepository
	rentals RentalRepository
	store   SettlementStore
	now     func() time.Time
}

func NewService(rooms RoomRepository, rentals RentalRepository, store SettlementStore) *Service {
	return &Service{
		rooms:   rooms,
		rentals: rentals,
		store:   store,
		now:     time.Now,
	}
}

// Quote proposes a settlement amount for the room: billable days times the
// nightly price, minus the deposit taken at move-in. A negative total is
// legitimate (deposit covered more than the stay) and is shown as-is. A room
// with no lease history falls back to a single night at list price.
func (s *Service) Quote(ctx context.Context, roomID, ownerID int64) (*Quote, error) {
	room, err := s.rooms.GetByID(ctx, roomID, ownerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.quoteRoom(ctx, room, ownerID)
}

func (s *Service) quoteRoom(ctx context.Context, room *domain.Room, ownerID int64) (*Quote, error) {
	q := &Quote{
		RoomID:   room.ID,
		RoomName: room.Name,
		Tenant:   room.Tenant,
		Price:    room.Price,
	}

	rental, err := s.rentals.LatestForRoom(ctx, room.ID, ownerID)
	if err != nil {
		if !repository.IsNotFound(err) {
			return nil, err
		}
		q.Days = 1
		q.Suggested = room.Price
		return q, nil
	}

	q.Days = BillableDays(rental.StartDate, rental.EndDate)
	q.Deposit = rental.Deposit
	q.Suggested = int64(q.Days)*room.Price - rental.Deposit
	return q, nil
}

// Settle records the payment and closes out the room's occupancy: a paid
// invoice is appended, the current month's revenue bucket is bumped and the
// room returns to vacant. All three land in one transaction, so a failure
// leaves no partial ledger behind.
func (s *Service) Settle(ctx context.Context, ownerID int64, req SettleRequest) (*domain.Invoice, error) {
	room, err := s.rooms.GetByID(ctx, req.RoomID, ownerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !room.Occupied() {
		return nil, ErrRoomVacant
	}

	quote, err := s.quoteRoom(ctx, room, ownerID)
	if err != nil {
		return nil, err
	}

	amount := quote.Suggested
	if req.Amount != nil {
		amount = *req.Amount
	}

	now := s.now()
	inv := &domain.Invoice{
		Code:     newInvoiceCode(),
		OwnerID:  ownerID,
		RoomID:   quote.RoomID,
		RoomName: quote.RoomName,
		Tenant:   quote.Tenant,
		Amount:   amount,
		Status:   domain.InvoicePaid,
		IssuedAt: now,
	}

	if err := s.store.Settle(ctx, inv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettleFailed, err)
	}
	return inv, nil
}

func newInvoiceCode() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
