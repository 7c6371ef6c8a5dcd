package dashboard

// Stats is the dashboard's headline card row.
type Stats struct {
	Houses        int   `json:"houses"`
	Rooms         int   `json:"rooms"`
	OccupiedRooms int   `json:"occupied_rooms"`
	UnpaidCount   int64 `json:"unpaid_count"`
}
