package setdesign

import (
	"encoding/json"
	"time"
)

// SetDesign is a purchasable set decoration package.
type SetDesign struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	Price           float64   `json:"price"`
	Images          []string  `json:"images,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	IsActive        *bool     `json:"isActive,omitempty"`
	SourceRequestID string    `json:"sourceRequestId,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Key implements store.Identifiable.
func (s SetDesign) Key() string { return s.ID }

// UpsertRequest is the admin payload for a set design.
type UpsertRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"max=100"`
	Price       float64  `json:"price" validate:"gte=0"`
	Images      []string `json:"images" validate:"max=20,dive,url"`
	Tags        []string `json:"tags" validate:"max=20,dive,max=50"`
	IsActive    *bool    `json:"isActive"`
}

// ChatMessage is one turn of the design assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

// ChatRequest is forwarded to the backend design assistant.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,max=30,dive"`
}

// GenerateRequest asks the backend for a generated design concept.
type GenerateRequest struct {
	Description string  `json:"description" validate:"required,min=10,max=4000"`
	Category    string  `json:"category" validate:"max=100"`
	Style       string  `json:"style" validate:"max=100"`
	Budget      float64 `json:"budget" validate:"gte=0"`
}

// AssistantReply is the raw backend answer; its shape belongs to the backend.
type AssistantReply = json.RawMessage
