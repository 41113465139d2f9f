package comment

import (
	"time"

	"github.com/splus/splus-api/internal/domain/booking"
)

// TargetType is what a comment is attached to.
type TargetType string

const (
	TargetStudio    TargetType = "studio"
	TargetSetDesign TargetType = "setDesign"
)

// Valid reports whether t is a known target.
func (t TargetType) Valid() bool {
	return t == TargetStudio || t == TargetSetDesign
}

// Comment is a customer comment with an optional star rating.
type Comment struct {
	ID         string      `json:"_id"`
	Author     booking.Ref `json:"userId"`
	TargetType TargetType  `json:"targetType"`
	TargetID   string      `json:"targetId"`
	Content    string      `json:"content"`
	Rating     int         `json:"rating,omitempty"`
	CreatedAt  time.Time   `json:"createdAt,omitempty"`
	UpdatedAt  time.Time   `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (c Comment) Key() string { return c.ID }

// CreateRequest for creating a comment
type CreateRequest struct {
	TargetType TargetType `json:"targetType" validate:"required,oneof=studio setDesign"`
	TargetID   string     `json:"targetId" validate:"required"`
	Content    string     `json:"content" validate:"required,min=2,max=2000"`
	Rating     int        `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Summary aggregates the ratings of one listed page.
type Summary struct {
	AverageRating float64     `json:"averageRating"`
	Rated         int         `json:"rated"`
	Distribution  map[int]int `json:"distribution"`
}

// Summarize computes rating stats over comments. Unrated comments are skipped.
func Summarize(comments []Comment) Summary {
	s := Summary{Distribution: map[int]int{}}
	sum := 0
	for _, c := range comments {
		if c.Rating < 1 || c.Rating > 5 {
			continue
		}
		s.Distribution[c.Rating]++
		s.Rated++
		sum += c.Rating
	}
	if s.Rated > 0 {
		s.AverageRating = float64(sum) / float64(s.Rated)
	}
	return s
}
