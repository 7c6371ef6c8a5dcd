package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"happyhouse/internal/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

type invoiceModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Code      string    `gorm:"column:code;uniqueIndex"`
	OwnerID   int64     `gorm:"column:owner_id;index"`
	RoomID    int64     `gorm:"column:room_id"`
	RoomName  string    `gorm:"column:room_name"`
	Tenant    string    `gorm:"column:tenant"`
	Amount    int64     `gorm:"column:amount"`
	Status    string    `gorm:"column:status"`
	IssuedAt  time.Time `gorm:"column:issued_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (invoiceModel) TableName() string { return "invoices" }

func toDomainInvoice(m invoiceModel) *domain.Invoice {
	return &domain.Invoice{
		ID:        m.ID,
		Code:      m.Code,
		OwnerID:   m.OwnerID,
		RoomID:    m.RoomID,
		RoomName:  m.RoomName,
		Tenant:    m.Tenant,
		Amount:    m.Amount,
		Status:    domain.InvoiceStatus(m.Status),
		IssuedAt:  m.IssuedAt,
		CreatedAt: m.CreatedAt,
	}
}

func toInvoiceModel(inv *domain.Invoice) invoiceModel {
	return invoiceModel{
		ID:        inv.ID,
		Code:      inv.Code,
		OwnerID:   inv.OwnerID,
		RoomID:    inv.RoomID,
		RoomName:  inv.RoomName,
		Tenant:    inv.Tenant,
		Amount:    inv.Amount,
		Status:    string(inv.Status),
		IssuedAt:  inv.IssuedAt,
		CreatedAt: inv.CreatedAt,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	m := toInvoiceModel(inv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*inv = *toDomainInvoice(m)
	return nil
}

func (r *InvoiceRepository) CountUnpaid(ctx context.Context, ownerID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&invoiceModel{}).
		Where("owner_id = ? AND status = ?", ownerID, string(domain.InvoiceUnpaid)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *InvoiceRepository) ListPaid(ctx context.Context, ownerID int64) ([]domain.Invoice, error) {
	var ms []invoiceModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, string(domain.InvoicePaid)).
		Order("issued_at ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Invoice, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainInvoice(m))
	}
	return out, nil
}

// ListAllPaid returns every paid invoice across owners, for projection
// rebuilds.
func (r *InvoiceRepository) ListAllPaid(ctx context.Context) ([]domain.Invoice, error) {
	var ms []invoiceModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.InvoicePaid)).
		Order("issued_at ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Invoice, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainInvoice(m))
	}
	return out, nil
}
