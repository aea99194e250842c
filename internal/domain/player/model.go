package player

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxPhoneLength = 30
)

// Category constants for the club's squads.
const (
	CategoryJuveniles = "juveniles"
	CategoryMayores   = "mayores"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("player name cannot be empty")
	ErrEmptySurname   = errors.New("player surname cannot be empty")
	ErrEmptyAccountID = errors.New("player must be linked to an account")
)

// Player holds the profile for one club member. Exactly one Player exists
// per Account (enforced by a unique constraint on account_id).
type Player struct {
	ID        string
	AccountID string
	Name      string
	Surname   string
	Phone     string
	Position  string
	Category  string
}

// Validate checks if the Player has valid data.
// PRE: Player struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Player) Validate() error {
	if p.AccountID == "" {
		return ErrEmptyAccountID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Surname) == "" {
		return ErrEmptySurname
	}
	if len(p.Name) > MaxNameLength || len(p.Surname) > MaxNameLength {
		return errors.New("player name cannot exceed 100 characters")
	}
	if len(p.Phone) > MaxPhoneLength {
		return errors.New("player phone cannot exceed 30 characters")
	}
	return nil
}

// FullName returns the display name "Name Surname".
// INVARIANT: Player fields are not mutated
func (p *Player) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}
