package domain

import "time"

type InvoiceStatus string

const (
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceUnpaid InvoiceStatus = "unpaid"
)

// Invoice records a payment against a room. Room and tenant names are
// snapshots taken at issue time, so deleting the room later keeps the
// billing history readable.
type Invoice struct {
	ID        int64         `json:"id"`
	Code      string        `json:"code"`
	OwnerID   int64         `json:"owner_id"`
	RoomID    int64         `json:"room_id"`
	RoomName  string        `json:"room_name"`
	Tenant    string        `json:"tenant"`
	Amount    int64         `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	IssuedAt  time.Time     `json:"issued_at"`
	CreatedAt time.Time     `json:"created_at"`
}
