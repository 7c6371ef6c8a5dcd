package repository

import (
	"context"

	"gorm.io/gorm"

	"happyhouse/internal/domain"
)

// BillingRepository owns the settlement write path: one transaction covering
// the invoice insert, the revenue-bucket upsert and the room reset, so a
// failure can never leave the ledger half-updated.
type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) Settle(ctx context.Context, inv *domain.Invoice) error {
	m := toInvoiceModel(inv)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		year := inv.IssuedAt.Year()
		month := inv.IssuedAt.Month()
		if err := upsertRevenueBucket(tx, inv.OwnerID, year, int(month), month.String(), inv.Amount); err != nil {
			return err
		}

		reset := tx.Model(&roomModel{}).
			Where("id = ? AND owner_id = ?", inv.RoomID, inv.OwnerID).
			Updates(map[string]any{
				"status": string(domain.RoomVacant),
				"tenant": domain.NoTenant,
			})
		if reset.Error != nil {
			return reset.Error
		}
		if reset.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	*inv = *toDomainInvoice(m)
	return nil
}
