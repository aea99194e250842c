package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"clubvoley/internal/domain/attendance"
	"clubvoley/internal/domain/training"

	"github.com/google/uuid"
)

// AttendanceStoreForConfirm defines the store interface needed by ConfirmAttendance.
type AttendanceStoreForConfirm interface {
	Upsert(ctx context.Context, a attendance.Attendance) error
}

// TrainingLookupStore defines the training store interface needed to verify
// the session exists.
type TrainingLookupStore interface {
	GetByID(ctx context.Context, id string) (training.Session, error)
}

// ConfirmAttendanceInput carries input for the confirm-attendance orchestrator.
type ConfirmAttendanceInput struct {
	SessionID string
	PlayerID  string
}

// ConfirmAttendanceDeps holds dependencies for ConfirmAttendance.
type ConfirmAttendanceDeps struct {
	AttendanceStore AttendanceStoreForConfirm
	TrainingStore   TrainingLookupStore
	PlayerStore     PlayerLookupStore
}

var ErrSessionNotFound = errors.New("training session not found")

// ExecuteConfirmAttendance marks a player as attending one session. The
// write is a storage-level upsert keyed on (session_id, player_id), so
// confirming twice is idempotent and there is no un-confirm.
// PRE: SessionID and PlayerID refer to existing rows
// POST: Exactly one record exists for (session, player) with Attended=true
func ExecuteConfirmAttendance(ctx context.Context, input ConfirmAttendanceInput, deps ConfirmAttendanceDeps) error {
	if input.SessionID == "" {
		return attendance.ErrEmptySessionID
	}
	if input.PlayerID == "" {
		return attendance.ErrEmptyPlayerID
	}

	if _, err := deps.TrainingStore.GetByID(ctx, input.SessionID); err != nil {
		return ErrSessionNotFound
	}
	if _, err := deps.PlayerStore.GetByID(ctx, input.PlayerID); err != nil {
		return ErrPlayerNotFound
	}

	a := attendance.Attendance{
		ID:        uuid.New().String(),
		SessionID: input.SessionID,
		PlayerID:  input.PlayerID,
	}
	a.Confirm()

	if err := a.Validate(); err != nil {
		return err
	}

	if err := deps.AttendanceStore.Upsert(ctx, a); err != nil {
		return err
	}

	slog.Info("attendance_event", "event", "attendance_confirmed", "session_id", input.SessionID, "player_id", input.PlayerID)

	return nil
}
