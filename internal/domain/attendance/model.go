package attendance

import (
	"errors"
)

// Domain errors
var (
	ErrEmptySessionID = errors.New("session ID is required")
	ErrEmptyPlayerID  = errors.New("player ID is required")
)

// Attendance records whether a player attended one training session. At most
// one record exists per (SessionID, PlayerID); confirming twice upserts onto
// the same row. Absence of a record means the player did not attend — readers
// default to Attended=false, never an error.
type Attendance struct {
	ID        string
	SessionID string
	PlayerID  string
	Attended  bool
}

// Validate checks if the Attendance has valid data.
// PRE: Attendance struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Attendance) Validate() error {
	if a.SessionID == "" {
		return ErrEmptySessionID
	}
	if a.PlayerID == "" {
		return ErrEmptyPlayerID
	}
	return nil
}

// Confirm marks the attendance as confirmed. Idempotent.
// POST: Attended is true
func (a *Attendance) Confirm() {
	a.Attended = true
}
