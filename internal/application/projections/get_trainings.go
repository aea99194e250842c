package projections

import (
	"context"

	"clubvoley/internal/domain/attendance"
	"clubvoley/internal/domain/training"
)

// TrainingStoreForList defines the training store interface needed by the
// trainings projection.
type TrainingStoreForList interface {
	List(ctx context.Context) ([]training.Session, error)
}

// AttendanceStoreForList defines the attendance store interface needed by
// the trainings projection.
type AttendanceStoreForList interface {
	ListByPlayerID(ctx context.Context, playerID string) ([]attendance.Attendance, error)
}

// GetTrainingsQuery carries input for the trainings projection. PlayerID may
// be empty for callers without a player profile (admins), which yields the
// plain session list with every Attended flag false.
type GetTrainingsQuery struct {
	PlayerID string
}

// GetTrainingsDeps holds dependencies for the trainings projection.
type GetTrainingsDeps struct {
	TrainingStore   TrainingStoreForList
	AttendanceStore AttendanceStoreForList
}

// TrainingEntry is one session joined with the caller's own attendance flag.
type TrainingEntry struct {
	Session  training.Session
	Attended bool
}

// GetTrainingsResult carries the output of the trainings projection.
type GetTrainingsResult struct {
	Entries []TrainingEntry
}

// QueryGetTrainings lists all sessions left-joined with the caller's
// attendance records: a session with no record for this player reads as
// Attended=false, never as an error.
func QueryGetTrainings(ctx context.Context, query GetTrainingsQuery, deps GetTrainingsDeps) (GetTrainingsResult, error) {
	sessions, err := deps.TrainingStore.List(ctx)
	if err != nil {
		return GetTrainingsResult{}, err
	}

	attended := make(map[string]bool)
	if query.PlayerID != "" {
		records, err := deps.AttendanceStore.ListByPlayerID(ctx, query.PlayerID)
		if err != nil {
			return GetTrainingsResult{}, err
		}
		for _, rec := range records {
			attended[rec.SessionID] = rec.Attended
		}
	}

	entries := make([]TrainingEntry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, TrainingEntry{
			Session:  s,
			Attended: attended[s.ID],
		})
	}

	return GetTrainingsResult{Entries: entries}, nil
}
