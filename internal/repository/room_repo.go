package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"happyhouse/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	OwnerID   int64     `gorm:"column:owner_id;uniqueIndex:idx_rooms_owner_name"`
	Name      string    `gorm:"column:name;uniqueIndex:idx_rooms_owner_name"`
	House     string    `gorm:"column:house"`
	Status    string    `gorm:"column:status"`
	Tenant    string    `gorm:"column:tenant"`
	Price     int64     `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		House:     m.House,
		Status:    domain.RoomStatus(m.Status),
		Tenant:    m.Tenant,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		House:     r.House,
		Status:    string(r.Status),
		Tenant:    r.Tenant,
		Price:     r.Price,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id, ownerID int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

// ListByOwner returns the owner's rooms ordered for display. Room names are
// usually numeric ("101", "202"), so length-first ordering keeps "9" ahead
// of "10".
func (r *RoomRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("length(name), name").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) ListVacant(ctx context.Context, ownerID int64) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, string(domain.RoomVacant)).
		Order("length(name), name").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// Update applies the given column values to an owned room.
func (r *RoomRepository) Update(ctx context.Context, id, ownerID int64, fields map[string]any) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a room. Rentals and invoices referencing it are kept as
// history on purpose.
func (r *RoomRepository) Delete(ctx context.Context, id, ownerID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&roomModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
