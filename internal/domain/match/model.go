package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

const MaxScoreLength = 50

// Match records a completed match between two players of one club.
// Score is free text such as "6-4, 6-2" and is never parsed.
type Match struct {
	ID         string
	ClubID     string
	WinnerID   string
	LoserID    string
	Score      string
	DatePlayed time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WithPlayers is a match joined with its winner and loser records.
type WithPlayers struct {
	Match
	Winner player.Player
	Loser  player.Player
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.ClubID == "" {
		return fmt.Errorf("match club id is required")
	}
	if m.WinnerID == "" || m.LoserID == "" {
		return fmt.Errorf("winner and loser are required")
	}
	if m.WinnerID == m.LoserID {
		return fmt.Errorf("winner and loser must be different players")
	}
	score := strings.TrimSpace(m.Score)
	if score == "" {
		return fmt.Errorf("score is required")
	}
	if len(score) > MaxScoreLength {
		return fmt.Errorf("score must be at most %d characters", MaxScoreLength)
	}
	if m.DatePlayed.IsZero() {
		return fmt.Errorf("date played is required")
	}

	return nil
}

// ValidateParticipants checks both players belong to the match's club.
func (m Match) ValidateParticipants(winner, loser player.Player) error {
	if winner.ID != m.WinnerID || loser.ID != m.LoserID {
		return fmt.Errorf("participants do not match winner and loser ids")
	}
	if winner.ClubID != m.ClubID || loser.ClubID != m.ClubID {
		return fmt.Errorf("winner and loser must belong to the same club")
	}
	return nil
}
