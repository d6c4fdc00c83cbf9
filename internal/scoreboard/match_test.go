package scoreboard

import (
	"errors"
	"testing"
)

func TestNewMatchInitialScoreIsZero(t *testing.T) {
	m, err := newMatch("Team A", "Team B")
	if err != nil {
		t.Fatalf("newMatch: %v", err)
	}
	if m.HomeScore() != 0 || m.AwayScore() != 0 {
		t.Errorf("expected 0:0, got %d:%d", m.HomeScore(), m.AwayScore())
	}
}

func TestNewMatchAssignsNamesInOrder(t *testing.T) {
	m, err := newMatch("Team A", "Team B")
	if err != nil {
		t.Fatalf("newMatch: %v", err)
	}
	if m.Home() != "Team A" {
		t.Errorf("home = %q, want Team A", m.Home())
	}
	if m.Away() != "Team B" {
		t.Errorf("away = %q, want Team B", m.Away())
	}
}

func TestNewMatchNameValidation(t *testing.T) {
	cases := []struct {
		name string
		home string
		away string
	}{
		{"empty home", "", "Team B"},
		{"empty away", "Team A", ""},
		{"blank home", "   ", "Team B"},
		{"same team", "Team A", "Team A"},
		{"same team different casing", "teAm A", "teAM a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newMatch(tc.home, tc.away)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("newMatch(%q, %q) = %v, want ValidationError", tc.home, tc.away, err)
			}
		})
	}
}

func TestSetScoresRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name      string
		homeScore int
		awayScore int
	}{
		{"negative home", -1, 0},
		{"negative away", 0, -1},
		{"home at limit", 1000, 0},
		{"away excessively large", 0, 456789},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := newMatch("Team A", "Team B")
			if err != nil {
				t.Fatalf("newMatch: %v", err)
			}
			if err := m.setScores(3, 1); err != nil {
				t.Fatalf("setScores(3, 1): %v", err)
			}
			err = m.setScores(tc.homeScore, tc.awayScore)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("setScores(%d, %d) = %v, want ValidationError", tc.homeScore, tc.awayScore, err)
			}
			// failed update must not be observable, on either field
			if m.HomeScore() != 3 || m.AwayScore() != 1 {
				t.Errorf("scores changed to %d:%d after failed update", m.HomeScore(), m.AwayScore())
			}
		})
	}
}

func TestTotalScore(t *testing.T) {
	cases := []struct {
		homeScore int
		awayScore int
		total     int
	}{
		{0, 0, 0},
		{1, 1, 2},
		{0, 3, 3},
		{10, 10, 20},
		{999, 999, 1998},
	}
	for _, tc := range cases {
		m, err := newMatch("Team A", "Team B")
		if err != nil {
			t.Fatalf("newMatch: %v", err)
		}
		if err := m.setScores(tc.homeScore, tc.awayScore); err != nil {
			t.Fatalf("setScores(%d, %d): %v", tc.homeScore, tc.awayScore, err)
		}
		if got := m.TotalScore(); got != tc.total {
			t.Errorf("TotalScore() = %d for %d:%d, want %d", got, tc.homeScore, tc.awayScore, tc.total)
		}
	}
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"3", 3, false},
		{" 10 ", 10, false},
		{"999", 999, false},
		{"-1", 0, true},
		{"1000", 0, true},
		{"456789", 0, true},
		{"4.5", 0, true},
		{"foo", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseScore(tc.input)
		if tc.wantErr {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("ParseScore(%q) = %v, want ValidationError", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseScore(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseScore(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
