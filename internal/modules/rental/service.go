package rental

import (
	"context"

	"happyhouse/internal/domain"
	"happyhouse/internal/pkg/timeparse"
	"happyhouse/internal/repository"
)

type Service struct {
	rentals RentalRepository
	rooms   RoomRepository
}

func NewService(rentals RentalRepository, rooms RoomRepository) *Service {
	return &Service{
		rentals: rentals,
		rooms:   rooms,
	}
}

// VacantRooms lists the rooms the intake form can offer. Scoped to the owner
// like every other query.
func (s *Service) VacantRooms(ctx context.Context, ownerID int64) ([]domain.Room, error) {
	return s.rooms.ListVacant(ctx, ownerID)
}

// CreateRental records a new lease and marks the room occupied with the
// renter's name. Both writes land in one transaction; if the room was taken
// between form load and submit, the whole intake is rejected.
func (s *Service) CreateRental(ctx context.Context, ownerID int64, req CreateRentalRequest) (*domain.Rental, error) {
	start, err := timeparse.Parse(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := timeparse.Parse(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if !end.After(start) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID, ownerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if room.Occupied() {
		return nil, ErrRoomUnavailable
	}

	rental := &domain.Rental{
		OwnerID:   ownerID,
		RoomID:    room.ID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		StartDate: start,
		EndDate:   end,
		Deposit:   req.Deposit,
		Notes:     req.Notes,
	}

	if err := s.rentals.CreateClaiming(ctx, rental); err != nil {
		if repository.IsNotFound(err) {
			// Lost the claim race: the room stopped being vacant mid-flight.
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}
	return rental, nil
}

// History returns the room's lease records, most recent first.
func (s *Service) History(ctx context.Context, roomID, ownerID int64) ([]domain.Rental, error) {
	return s.rentals.ListForRoom(ctx, roomID, ownerID)
}
