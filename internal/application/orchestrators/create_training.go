package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"clubvoley/internal/domain/training"

	"github.com/google/uuid"
)

// TrainingStoreForCreate defines the store interface needed by CreateTraining.
type TrainingStoreForCreate interface {
	Save(ctx context.Context, s training.Session) error
}

// CreateTrainingInput carries input for the create-training orchestrator.
type CreateTrainingInput struct {
	Date        string // YYYY-MM-DD
	TimeSlot    string
	Description string
}

// CreateTrainingResult carries the created session.
type CreateTrainingResult struct {
	Session training.Session
}

// CreateTrainingDeps holds dependencies for CreateTraining.
type CreateTrainingDeps struct {
	TrainingStore TrainingStoreForCreate
}

// ExecuteCreateTraining creates a training session. Admin-only (the HTTP
// layer enforces the role); pure insert, sessions are immutable afterwards.
// PRE: Date is YYYY-MM-DD, TimeSlot is non-empty
// POST: Session persisted with a fresh ID
func ExecuteCreateTraining(ctx context.Context, input CreateTrainingInput, deps CreateTrainingDeps) (CreateTrainingResult, error) {
	s := training.Session{
		ID:          uuid.New().String(),
		Date:        input.Date,
		TimeSlot:    input.TimeSlot,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.Validate(); err != nil {
		return CreateTrainingResult{}, err
	}

	if err := deps.TrainingStore.Save(ctx, s); err != nil {
		return CreateTrainingResult{}, err
	}

	slog.Info("training_event", "event", "session_created", "session_id", s.ID, "date", s.Date, "time_slot", s.TimeSlot)

	return CreateTrainingResult{Session: s}, nil
}
