package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSubjectLabel(t *testing.T) {
	testCases := []struct {
		name     string
		code     int
		expected string
	}{
		{"Profession", SubjectProfession, "Профессия"},
		{"Business", SubjectBusiness, "Бизнес"},
		{"Education", SubjectEducation, "Образование"},
		{"Entertainment", SubjectEntertainment, "Развлечения"},
		{"Sport", SubjectSport, "Спорт"},
		{"Social", SubjectSocial, "Общение"},
		{"Culture", SubjectCulture, "Культура"},
		{"Charity", SubjectCharity, "Добро"},
		{"Zero", 0, SubjectUnknownLabel},
		{"Unmapped", 99, SubjectUnknownLabel},
		{"Negative", -1, SubjectUnknownLabel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SubjectLabel(tc.code); got != tc.expected {
				t.Errorf("SubjectLabel(%d) = %q; want %q", tc.code, got, tc.expected)
			}
		})
	}
}

func TestEventInfoAppliesSubjectLabel(t *testing.T) {
	event := Event{
		ID:           uuid.New(),
		Title:        "Go meetup",
		Description:  "Monthly meetup",
		Subject:      SubjectEducation,
		DatetimeFrom: time.Now(),
		DatetimeTo:   time.Now().Add(2 * time.Hour),
		CreatorID:    uuid.New(),
	}

	info := event.Info()
	if info.Subject != "Образование" {
		t.Errorf("Info().Subject = %q; want %q", info.Subject, "Образование")
	}
	if info.ID != event.ID {
		t.Errorf("Info().ID = %v; want %v", info.ID, event.ID)
	}

	event.Subject = 42
	if got := event.Info().Subject; got != SubjectUnknownLabel {
		t.Errorf("Info().Subject for unmapped code = %q; want %q", got, SubjectUnknownLabel)
	}
}
