package billing

// Quote is the pre-filled billing proposal shown before settlement.
type Quote struct {
	RoomID    int64  `json:"room_id"`
	RoomName  string `json:"room_name"`
	Tenant    string `json:"tenant"`
	Days      int    `json:"days"`
	Price     int64  `json:"price"`
	Deposit   int64  `json:"deposit"`
	Suggested int64  `json:"suggested"`
}

type SettleRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
	// Amount overrides the suggested total when set; negative values are
	// accepted (deposit larger than the stay).
	Amount *int64 `json:"amount"`
}
