package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"happyhouse/internal/domain"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

type rentalModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	OwnerID   int64     `gorm:"column:owner_id;index"`
	RoomID    int64     `gorm:"column:room_id;index"`
	FullName  string    `gorm:"column:full_name"`
	Phone     string    `gorm:"column:phone"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	Deposit   int64     `gorm:"column:deposit"`
	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (rentalModel) TableName() string { return "rentals" }

func toDomainRental(m rentalModel) *domain.Rental {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Rental{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		RoomID:    m.RoomID,
		FullName:  m.FullName,
		Phone:     m.Phone,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Deposit:   m.Deposit,
		Notes:     notes,
		CreatedAt: m.CreatedAt,
	}
}

func toRentalModel(r *domain.Rental) rentalModel {
	var notes *string
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}

	return rentalModel{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		RoomID:    r.RoomID,
		FullName:  r.FullName,
		Phone:     r.Phone,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Deposit:   r.Deposit,
		Notes:     notes,
		CreatedAt: r.CreatedAt,
	}
}

// CreateClaiming inserts the rental and flips its room to occupied in one
// transaction. The status guard in the UPDATE loses gracefully when two
// sessions race for the same room: the second one rolls back with
// ErrRecordNotFound instead of double-letting it.
func (r *RentalRepository) CreateClaiming(ctx context.Context, rental *domain.Rental) error {
	m := toRentalModel(rental)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		claim := tx.Model(&roomModel{}).
			Where("id = ? AND owner_id = ? AND status = ?",
				rental.RoomID, rental.OwnerID, string(domain.RoomVacant)).
			Updates(map[string]any{
				"status": string(domain.RoomOccupied),
				"tenant": rental.FullName,
			})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	*rental = *toDomainRental(m)
	return nil
}

// LatestForRoom returns the most recent rental for the room, or
// gorm.ErrRecordNotFound when the room has no history.
func (r *RentalRepository) LatestForRoom(ctx context.Context, roomID, ownerID int64) (*domain.Rental, error) {
	var m rentalModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND owner_id = ?", roomID, ownerID).
		Order("created_at DESC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRental(m), nil
}

func (r *RentalRepository) ListForRoom(ctx context.Context, roomID, ownerID int64) ([]domain.Rental, error) {
	var ms []rentalModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND owner_id = ?", roomID, ownerID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Rental, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRental(m))
	}
	return out, nil
}
