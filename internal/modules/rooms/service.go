package rooms

import (
	"context"
	"strings"

	"happyhouse/internal/domain"
	"happyhouse/internal/repository"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

// List returns the owner's rooms, optionally filtered by a case-insensitive
// search over name, house and tenant.
func (s *Service) List(ctx context.Context, ownerID int64, search string) ([]domain.Room, error) {
	all, err := s.rooms.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return all, nil
	}

	needle := strings.ToLower(search)
	out := make([]domain.Room, 0, len(all))
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.House), needle) ||
			strings.Contains(strings.ToLower(r.Tenant), needle) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateRoomRequest) (*domain.Room, error) {
	if req.Name == "" || req.House == "" || req.Price < 0 {
		return nil, ErrValidation
	}

	room := &domain.Room{
		OwnerID: ownerID,
		Name:    req.Name,
		House:   req.House,
		Price:   req.Price,
		Status:  domain.RoomVacant,
		Tenant:  domain.NoTenant,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) Update(ctx context.Context, id, ownerID int64, req UpdateRoomRequest) (*domain.Room, error) {
	fields := make(map[string]any)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrValidation
		}
		fields["name"] = *req.Name
	}
	if req.House != nil {
		if *req.House == "" {
			return nil, ErrValidation
		}
		fields["house"] = *req.House
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrValidation
		}
		fields["price"] = *req.Price
	}

	if len(fields) > 0 {
		if err := s.rooms.Update(ctx, id, ownerID, fields); err != nil {
			switch {
			case repository.IsNotFound(err):
				return nil, ErrNotFound
			case repository.IsUniqueViolation(err):
				return nil, ErrDuplicateName
			}
			return nil, err
		}
	}

	room, err := s.rooms.GetByID(ctx, id, ownerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// Delete removes a room from inventory. Rental and invoice history for the
// room is deliberately left in place.
func (s *Service) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.rooms.Delete(ctx, id, ownerID); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id, ownerID int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id, ownerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}
