package customer

import "time"

// Customer is a user account as seen by staff and by the user themself.
type Customer struct {
	ID           string     `json:"_id"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Role         string     `json:"role"`
	AvatarURL    string     `json:"avatarUrl,omitempty"`
	IsActive     bool       `json:"isActive"`
	BookingCount int        `json:"bookingCount,omitempty"`
	TotalSpent   float64    `json:"totalSpent,omitempty"`
	LastBooking  *time.Time `json:"lastBookingAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt,omitempty"`
}

// Key implements store.Identifiable.
func (c Customer) Key() string { return c.ID }

// ProfileRequest updates the caller's own profile.
type ProfileRequest struct {
	FullName  string `json:"fullName" validate:"required,min=2,max=100"`
	Phone     string `json:"phone" validate:"omitempty,min=9,max=15"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
}

// StatusRequest blocks or unblocks a customer.
type StatusRequest struct {
	IsActive *bool  `json:"isActive" validate:"required"`
	Reason   string `json:"reason" validate:"max=500"`
}
