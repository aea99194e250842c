package orchestrators

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"clubvoley/internal/adapters/email"
	accountDomain "clubvoley/internal/domain/account"
	attendanceDomain "clubvoley/internal/domain/attendance"
	paymentDomain "clubvoley/internal/domain/payment"
	playerDomain "clubvoley/internal/domain/player"
	trainingDomain "clubvoley/internal/domain/training"
)

// Mock implementations shared across orchestrator tests. They mirror the
// SQLite stores' semantics, including the composite-key upserts and the
// sql.ErrNoRows contract for absent rows.

type mockAccountStore struct {
	accounts map[string]accountDomain.Account
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{accounts: make(map[string]accountDomain.Account)}
}

func (m *mockAccountStore) GetByID(ctx context.Context, id string) (accountDomain.Account, error) {
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return accountDomain.Account{}, fmt.Errorf("account not found: %w", sql.ErrNoRows)
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (accountDomain.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return accountDomain.Account{}, fmt.Errorf("account not found: %w", sql.ErrNoRows)
}

func (m *mockAccountStore) Save(ctx context.Context, a accountDomain.Account) error {
	m.accounts[a.ID] = a
	return nil
}

type mockPlayerStore struct {
	players map[string]playerDomain.Player
}

func newMockPlayerStore() *mockPlayerStore {
	return &mockPlayerStore{players: make(map[string]playerDomain.Player)}
}

func (m *mockPlayerStore) GetByID(ctx context.Context, id string) (playerDomain.Player, error) {
	if p, ok := m.players[id]; ok {
		return p, nil
	}
	return playerDomain.Player{}, fmt.Errorf("player not found: %w", sql.ErrNoRows)
}

func (m *mockPlayerStore) GetByAccountID(ctx context.Context, accountID string) (playerDomain.Player, error) {
	for _, p := range m.players {
		if p.AccountID == accountID {
			return p, nil
		}
	}
	return playerDomain.Player{}, fmt.Errorf("player not found: %w", sql.ErrNoRows)
}

func (m *mockPlayerStore) Save(ctx context.Context, p playerDomain.Player) error {
	m.players[p.ID] = p
	return nil
}

type mockPaymentStore struct {
	payments map[string]paymentDomain.Payment // keyed by id
}

func newMockPaymentStore() *mockPaymentStore {
	return &mockPaymentStore{payments: make(map[string]paymentDomain.Payment)}
}

func (m *mockPaymentStore) GetByID(ctx context.Context, id string) (paymentDomain.Payment, error) {
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return paymentDomain.Payment{}, fmt.Errorf("payment not found: %w", sql.ErrNoRows)
}

func (m *mockPaymentStore) GetByPlayerAndPeriod(ctx context.Context, playerID, period string) (paymentDomain.Payment, error) {
	for _, p := range m.payments {
		if p.PlayerID == playerID && p.Period == period {
			return p, nil
		}
	}
	return paymentDomain.Payment{}, fmt.Errorf("payment not found: %w", sql.ErrNoRows)
}

// UpsertReport emulates ON CONFLICT(player_id, period) DO UPDATE: the
// existing row keeps its id, report fields are overwritten.
func (m *mockPaymentStore) UpsertReport(ctx context.Context, p paymentDomain.Payment) error {
	for id, existing := range m.payments {
		if existing.PlayerID == p.PlayerID && existing.Period == p.Period {
			existing.Amount = p.Amount
			existing.Method = p.Method
			existing.State = p.State
			existing.ConfirmedBy = p.ConfirmedBy
			existing.ConfirmedAt = p.ConfirmedAt
			m.payments[id] = existing
			return nil
		}
	}
	m.payments[p.ID] = p
	return nil
}

func (m *mockPaymentStore) Save(ctx context.Context, p paymentDomain.Payment) error {
	m.payments[p.ID] = p
	return nil
}

type mockTrainingStore struct {
	sessions map[string]trainingDomain.Session
}

func newMockTrainingStore() *mockTrainingStore {
	return &mockTrainingStore{sessions: make(map[string]trainingDomain.Session)}
}

func (m *mockTrainingStore) GetByID(ctx context.Context, id string) (trainingDomain.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return trainingDomain.Session{}, fmt.Errorf("training session not found: %w", sql.ErrNoRows)
}

func (m *mockTrainingStore) Save(ctx context.Context, s trainingDomain.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mockTrainingStore) List(ctx context.Context) ([]trainingDomain.Session, error) {
	var list []trainingDomain.Session
	for _, s := range m.sessions {
		list = append(list, s)
	}
	return list, nil
}

type mockAttendanceStore struct {
	records map[string]attendanceDomain.Attendance // keyed by session_id+player_id
}

func newMockAttendanceStore() *mockAttendanceStore {
	return &mockAttendanceStore{records: make(map[string]attendanceDomain.Attendance)}
}

// Upsert emulates ON CONFLICT(session_id, player_id) DO UPDATE.
func (m *mockAttendanceStore) Upsert(ctx context.Context, a attendanceDomain.Attendance) error {
	key := a.SessionID + "|" + a.PlayerID
	if existing, ok := m.records[key]; ok {
		existing.Attended = a.Attended
		m.records[key] = existing
		return nil
	}
	m.records[key] = a
	return nil
}

type mockEmailSender struct {
	mu   sync.Mutex
	sent []email.SendRequest
}

func (m *mockEmailSender) Send(ctx context.Context, req email.SendRequest) (email.SendResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "mock-1"}, nil
}
