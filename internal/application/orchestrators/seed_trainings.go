package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clubvoley/internal/domain/training"

	"github.com/google/uuid"
)

// TrainingStoreForSeed defines the training store interface needed for seeding.
type TrainingStoreForSeed interface {
	List(ctx context.Context) ([]training.Session, error)
	Save(ctx context.Context, s training.Session) error
}

// SeedDemoTrainingsDeps holds dependencies for the demo schedule seed.
type SeedDemoTrainingsDeps struct {
	TrainingStore TrainingStoreForSeed
}

// ExecuteSeedDemoTrainings creates a small upcoming schedule for development
// environments. Skipped entirely if any session already exists, so a dev
// database keeps whatever the admin created.
// PRE: now is the current time
// POST: At least two upcoming sessions exist
func ExecuteSeedDemoTrainings(ctx context.Context, now time.Time, deps SeedDemoTrainingsDeps) error {
	existing, err := deps.TrainingStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing sessions: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	demos := []training.Session{
		{
			Date:        now.AddDate(0, 0, 2).Format("2006-01-02"),
			TimeSlot:    "19:00",
			Description: "Técnica: recepción y **defensa de campo**",
		},
		{
			Date:        now.AddDate(0, 0, 4).Format("2006-01-02"),
			TimeSlot:    "20:00",
			Description: "Partido amistoso interno",
		},
	}

	for _, s := range demos {
		s.ID = uuid.New().String()
		s.CreatedAt = now
		if err := s.Validate(); err != nil {
			return err
		}
		if err := deps.TrainingStore.Save(ctx, s); err != nil {
			return fmt.Errorf("failed to seed demo session: %w", err)
		}
	}

	slog.Info("seed_event", "event", "demo_trainings_created", "count", len(demos))
	return nil
}
