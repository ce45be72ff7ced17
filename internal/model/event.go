package model

import (
	"time"

	"github.com/google/uuid"
)

// Subject codes for events. Unmapped codes are serialized with
// SubjectUnknownLabel rather than rejected.
const (
	SubjectProfession    = 1
	SubjectBusiness      = 2
	SubjectEducation     = 3
	SubjectEntertainment = 4
	SubjectSport         = 5
	SubjectSocial        = 6
	SubjectCulture       = 7
	SubjectCharity       = 8
)

const SubjectUnknownLabel = "Unknown"

var subjectLabels = map[int]string{
	SubjectProfession:    "Профессия",
	SubjectBusiness:      "Бизнес",
	SubjectEducation:     "Образование",
	SubjectEntertainment: "Развлечения",
	SubjectSport:         "Спорт",
	SubjectSocial:        "Общение",
	SubjectCulture:       "Культура",
	SubjectCharity:       "Добро",
}

// SubjectLabel maps a subject code to its display label.
func SubjectLabel(code int) string {
	if label, ok := subjectLabels[code]; ok {
		return label
	}
	return SubjectUnknownLabel
}

// Event is the storage shape of an event.
type Event struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	BriefDescription *string    `json:"brief_description,omitempty"`
	Subject          int        `json:"subject"`
	LocationTitle    string     `json:"location_title"`
	DatetimeFrom     time.Time  `json:"datetime_from"`
	DatetimeTo       time.Time  `json:"datetime_to"`
	IsOnline         bool       `json:"is_online"`
	IsPaid           bool       `json:"is_paid"`
	ContactInfo      string     `json:"contact_info"`
	EventLimit       *int       `json:"event_limit,omitempty"`
	AgeLimit         *int       `json:"age_limit,omitempty"`
	CreatorID        uuid.UUID  `json:"creator_id"`
	CommunityID      *uuid.UUID `json:"community_id,omitempty"`
	Picture          *uuid.UUID `json:"picture,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateEventRequest is the full event shape used by both create and
// update. Updates overwrite every field it carries.
type CreateEventRequest struct {
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description" validate:"required"`
	BriefDescription *string    `json:"brief_description"`
	Subject          int        `json:"subject" validate:"required"`
	LocationTitle    string     `json:"location_title" validate:"required"`
	DatetimeFrom     time.Time  `json:"datetime_from" validate:"required"`
	DatetimeTo       time.Time  `json:"datetime_to" validate:"required"`
	IsOnline         bool       `json:"is_online"`
	IsPaid           bool       `json:"is_paid"`
	ContactInfo      string     `json:"contact_info" validate:"required"`
	EventLimit       *int       `json:"event_limit"`
	AgeLimit         *int       `json:"age_limit"`
	CreatorID        uuid.UUID  `json:"creator_id" validate:"required"`
	CommunityID      *uuid.UUID `json:"community_id"`
	Picture          *uuid.UUID `json:"picture"`
}

// EventInfo is the public event shape; the subject code is rendered
// as its display label.
type EventInfo struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	BriefDescription *string    `json:"brief_description,omitempty"`
	Subject          string     `json:"subject"`
	LocationTitle    string     `json:"location_title"`
	DatetimeFrom     time.Time  `json:"datetime_from"`
	DatetimeTo       time.Time  `json:"datetime_to"`
	IsOnline         bool       `json:"is_online"`
	IsPaid           bool       `json:"is_paid"`
	ContactInfo      string     `json:"contact_info"`
	EventLimit       *int       `json:"event_limit,omitempty"`
	AgeLimit         *int       `json:"age_limit,omitempty"`
	CreatorID        uuid.UUID  `json:"creator_id"`
	CommunityID      *uuid.UUID `json:"community_id,omitempty"`
	Picture          *uuid.UUID `json:"picture,omitempty"`
}

func (e Event) Info() EventInfo {
	return EventInfo{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		BriefDescription: e.BriefDescription,
		Subject:          SubjectLabel(e.Subject),
		LocationTitle:    e.LocationTitle,
		DatetimeFrom:     e.DatetimeFrom,
		DatetimeTo:       e.DatetimeTo,
		IsOnline:         e.IsOnline,
		IsPaid:           e.IsPaid,
		ContactInfo:      e.ContactInfo,
		EventLimit:       e.EventLimit,
		AgeLimit:         e.AgeLimit,
		CreatorID:        e.CreatorID,
		CommunityID:      e.CommunityID,
		Picture:          e.Picture,
	}
}
