package studio

// UpsertRequest is the admin payload for creating or updating a studio.
type UpsertRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=200"`
	Description      string   `json:"description" validate:"max=5000"`
	Location         string   `json:"location" validate:"max=500"`
	Area             float64  `json:"area" validate:"gte=0"`
	Capacity         int      `json:"capacity" validate:"gte=0"`
	BasePricePerHour float64  `json:"basePricePerHour" validate:"gte=0"`
	Images           []string `json:"images" validate:"omitempty,dive,url"`
	Status           Status   `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}
