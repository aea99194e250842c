package training

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxDescriptionLength = 2000
)

// Domain errors
var (
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptyTimeSlot = errors.New("time slot cannot be empty")
)

// Session is one scheduled training. Sessions are created by an admin and
// are immutable afterwards — there is no edit or delete path.
type Session struct {
	ID          string
	Date        string // YYYY-MM-DD
	TimeSlot    string // e.g. "18:00"
	Description string
	CreatedAt   time.Time
}

// Validate checks if the Session has valid data.
// PRE: Session struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Session) Validate() error {
	if !IsValidDate(s.Date) {
		return ErrInvalidDate
	}
	if strings.TrimSpace(s.TimeSlot) == "" {
		return ErrEmptyTimeSlot
	}
	if len(s.Description) > MaxDescriptionLength {
		return errors.New("description cannot exceed 2000 characters")
	}
	return nil
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD date.
func IsValidDate(s string) bool {
	t, err := time.Parse("2006-01-02", s)
	return err == nil && t.Format("2006-01-02") == s
}
