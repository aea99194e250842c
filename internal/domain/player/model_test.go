package player_test

import (
	"strings"
	"testing"

	"clubvoley/internal/domain/player"
)

// TestPlayer_Validate tests validation of Player.
func TestPlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		player  player.Player
		wantErr bool
	}{
		{
			name: "valid player",
			player: player.Player{
				ID:        "1",
				AccountID: "a1",
				Name:      "Lucía",
				Surname:   "Gómez",
				Phone:     "1122334455",
				Position:  "Armadora",
				Category:  player.CategoryMayores,
			},
			wantErr: false,
		},
		{
			name: "missing account link",
			player: player.Player{
				ID:      "2",
				Name:    "Ana",
				Surname: "Pérez",
			},
			wantErr: true,
		},
		{
			name: "blank name",
			player: player.Player{
				ID:        "3",
				AccountID: "a1",
				Name:      "  ",
				Surname:   "Pérez",
			},
			wantErr: true,
		},
		{
			name: "blank surname",
			player: player.Player{
				ID:        "4",
				AccountID: "a1",
				Name:      "Ana",
			},
			wantErr: true,
		},
		{
			name: "name too long",
			player: player.Player{
				ID:        "5",
				AccountID: "a1",
				Name:      strings.Repeat("a", player.MaxNameLength+1),
				Surname:   "Pérez",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.player.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestPlayer_FullName tests display name assembly.
func TestPlayer_FullName(t *testing.T) {
	p := player.Player{Name: "Lucía", Surname: "Gómez"}
	if got := p.FullName(); got != "Lucía Gómez" {
		t.Errorf("FullName() = %q, want %q", got, "Lucía Gómez")
	}
}
