package rooms

type CreateRoomRequest struct {
	Name  string `json:"name" validate:"required"`
	House string `json:"house" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
}

// UpdateRoomRequest carries partial edits; nil fields are left untouched.
type UpdateRoomRequest struct {
	Name  *string `json:"name"`
	House *string `json:"house"`
	Price *int64  `json:"price"`
}
