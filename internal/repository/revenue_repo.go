package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"happyhouse/internal/domain"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

type revenueBucketModel struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	OwnerID int64  `gorm:"column:owner_id;uniqueIndex:idx_revenue_owner_month"`
	Year    int    `gorm:"column:year;uniqueIndex:idx_revenue_owner_month"`
	Ordinal int    `gorm:"column:ordinal;uniqueIndex:idx_revenue_owner_month"`
	Month   string `gorm:"column:month"`
	Amount  int64  `gorm:"column:amount"`
}

func (revenueBucketModel) TableName() string { return "revenue_buckets" }

func toDomainBucket(m revenueBucketModel) domain.RevenueBucket {
	return domain.RevenueBucket{
		ID:      m.ID,
		OwnerID: m.OwnerID,
		Year:    m.Year,
		Ordinal: m.Ordinal,
		Month:   m.Month,
		Amount:  m.Amount,
	}
}

// upsertRevenueBucket adds delta to the owner's bucket for (year, ordinal),
// creating the bucket when absent. Shared with the settlement transaction.
func upsertRevenueBucket(tx *gorm.DB, ownerID int64, year, ordinal int, month string, delta int64) error {
	m := revenueBucketModel{
		OwnerID: ownerID,
		Year:    year,
		Ordinal: ordinal,
		Month:   month,
		Amount:  delta,
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "year"}, {Name: "ordinal"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount": gorm.Expr("amount + ?", delta),
		}),
	}).Create(&m).Error
}

func (r *RevenueRepository) Upsert(ctx context.Context, ownerID int64, year, ordinal int, month string, delta int64) error {
	return upsertRevenueBucket(r.db.WithContext(ctx), ownerID, year, ordinal, month, delta)
}

// ListByOwner returns the owner's buckets in chart order.
func (r *RevenueRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.RevenueBucket, error) {
	var ms []revenueBucketModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("year, ordinal").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RevenueBucket, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainBucket(m))
	}
	return out, nil
}

// Rebuild replaces the whole projection with buckets recomputed from the paid
// invoice log. The invoice log is the source of truth; this repairs any drift.
func (r *RevenueRepository) Rebuild(ctx context.Context, invoices []domain.Invoice) error {
	type key struct {
		ownerID int64
		year    int
		ordinal int
	}

	sums := make(map[key]int64)
	for _, inv := range invoices {
		if inv.Status != domain.InvoicePaid {
			continue
		}
		k := key{inv.OwnerID, inv.IssuedAt.Year(), int(inv.IssuedAt.Month())}
		sums[k] += inv.Amount
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&revenueBucketModel{}).Error; err != nil {
			return err
		}
		for k, amount := range sums {
			m := revenueBucketModel{
				OwnerID: k.ownerID,
				Year:    k.year,
				Ordinal: k.ordinal,
				Month:   time.Month(k.ordinal).String(),
				Amount:  amount,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
