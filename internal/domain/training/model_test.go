package training_test

import (
	"strings"
	"testing"

	"clubvoley/internal/domain/training"
)

// TestSession_Validate tests validation of Session.
func TestSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		session training.Session
		wantErr bool
	}{
		{
			name: "valid session",
			session: training.Session{
				ID:          "1",
				Date:        "2026-09-02",
				TimeSlot:    "19:00 - 21:00",
				Description: "Técnica de saque",
			},
			wantErr: false,
		},
		{
			name: "empty description is allowed",
			session: training.Session{
				ID:       "2",
				Date:     "2026-09-04",
				TimeSlot: "18:00",
			},
			wantErr: false,
		},
		{
			name: "malformed date",
			session: training.Session{
				ID:       "3",
				Date:     "02/09/2026",
				TimeSlot: "19:00",
			},
			wantErr: true,
		},
		{
			name: "blank time slot",
			session: training.Session{
				ID:       "4",
				Date:     "2026-09-02",
				TimeSlot: "   ",
			},
			wantErr: true,
		},
		{
			name: "description too long",
			session: training.Session{
				ID:          "5",
				Date:        "2026-09-02",
				TimeSlot:    "19:00",
				Description: strings.Repeat("x", training.MaxDescriptionLength+1),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestIsValidDate tests date key parsing.
func TestIsValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-09-02", true},
		{"2026-02-29", false},
		{"2026-9-2", false},
		{"2026-09", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := training.IsValidDate(tt.date); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
