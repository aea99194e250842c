package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	playerDomain "clubvoley/internal/domain/player"
	trainingDomain "clubvoley/internal/domain/training"
)

func attendanceTestDeps() (ConfirmAttendanceDeps, *mockAttendanceStore) {
	attendances := newMockAttendanceStore()
	trainings := newMockTrainingStore()
	players := newMockPlayerStore()

	trainings.sessions["s1"] = trainingDomain.Session{ID: "s1", Date: "2026-09-01", TimeSlot: "19:00", CreatedAt: time.Now()}
	players.players["p1"] = playerDomain.Player{ID: "p1", AccountID: "acc-1", Name: "Ana", Surname: "Pérez"}

	return ConfirmAttendanceDeps{
		AttendanceStore: attendances,
		TrainingStore:   trainings,
		PlayerStore:     players,
	}, attendances
}

// TestExecuteConfirmAttendance tests the happy path.
func TestExecuteConfirmAttendance(t *testing.T) {
	deps, attendances := attendanceTestDeps()

	err := ExecuteConfirmAttendance(context.Background(),
		ConfirmAttendanceInput{SessionID: "s1", PlayerID: "p1"}, deps)
	if err != nil {
		t.Fatalf("ExecuteConfirmAttendance() error = %v", err)
	}

	rec, ok := attendances.records["s1|p1"]
	if !ok {
		t.Fatal("no record stored for (s1, p1)")
	}
	if !rec.Attended {
		t.Error("Attended = false, want true")
	}
}

// TestExecuteConfirmAttendance_Idempotent verifies confirming twice leaves
// exactly one record.
func TestExecuteConfirmAttendance_Idempotent(t *testing.T) {
	deps, attendances := attendanceTestDeps()
	ctx := context.Background()
	input := ConfirmAttendanceInput{SessionID: "s1", PlayerID: "p1"}

	if err := ExecuteConfirmAttendance(ctx, input, deps); err != nil {
		t.Fatalf("first confirm error = %v", err)
	}
	if err := ExecuteConfirmAttendance(ctx, input, deps); err != nil {
		t.Fatalf("second confirm error = %v", err)
	}

	if len(attendances.records) != 1 {
		t.Errorf("store holds %d records, want 1", len(attendances.records))
	}
	if !attendances.records["s1|p1"].Attended {
		t.Error("Attended = false after repeated confirm")
	}
}

// TestExecuteConfirmAttendance_Errors tests the reference checks.
func TestExecuteConfirmAttendance_Errors(t *testing.T) {
	deps, _ := attendanceTestDeps()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   ConfirmAttendanceInput
		wantErr error
	}{
		{"unknown session", ConfirmAttendanceInput{SessionID: "ghost", PlayerID: "p1"}, ErrSessionNotFound},
		{"unknown player", ConfirmAttendanceInput{SessionID: "s1", PlayerID: "ghost"}, ErrPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ExecuteConfirmAttendance(ctx, tt.input, deps); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
