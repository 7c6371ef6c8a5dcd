package rental

// CreateRentalRequest is the rental-intake form payload. Timestamps arrive as
// strings in datetime-local or RFC3339 form.
type CreateRentalRequest struct {
	FullName  string `json:"full_name" validate:"required,min=3"`
	Phone     string `json:"phone" validate:"required,numeric,min=10"`
	RoomID    int64  `json:"room_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Deposit   int64  `json:"deposit" validate:"required,gt=0"`
	Notes     string `json:"notes"`
}
