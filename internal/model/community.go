package model

import (
	"time"

	"github.com/google/uuid"
)

// Community is the storage shape of a community.
type Community struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Private     bool      `json:"private"`
	ChatLink    *string   `json:"chat_link,omitempty"`
	CreatorID   uuid.UUID `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommunityRequest is the full community shape used by both
// create and update.
type CreateCommunityRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Private     bool      `json:"private"`
	ChatLink    *string   `json:"chat_link"`
	CreatorID   uuid.UUID `json:"creator_id" validate:"required"`
}

// CommunityInfo is the public community shape.
type CommunityInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Private     bool      `json:"private"`
	ChatLink    *string   `json:"chat_link,omitempty"`
	CreatorID   uuid.UUID `json:"creator_id"`
}

func (c Community) Info() CommunityInfo {
	return CommunityInfo{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Location:    c.Location,
		Private:     c.Private,
		ChatLink:    c.ChatLink,
		CreatorID:   c.CreatorID,
	}
}
