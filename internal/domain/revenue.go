package domain

// RevenueBucket accumulates paid-invoice amounts for one calendar month of one
// owner. It is a cached projection of the invoice log kept for the dashboard
// chart; the invoice log stays the source of truth and the projection can be
// rebuilt from it at any time.
type RevenueBucket struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	Year    int    `json:"year"`
	Ordinal int    `json:"ordinal"` // 1..12, January first
	Month   string `json:"month"`
	Amount  int64  `json:"amount"`
}
