package player

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
)

// InitialRankingPoints is assigned to every player joining a ladder.
const InitialRankingPoints float64 = 1000

const MaxNameLength = 100

// ErrEmailTaken is returned by repositories when the email is already used
// by another player of the same club.
var ErrEmailTaken = errors.New("player email already used in club")

// Player is a ladder participant within a single club.
//
// Position is the authoritative manual rank (1 = top). Zero means no
// position has been assigned and sorts after every positioned player.
type Player struct {
	ID            string
	ClubID        string
	Name          string
	Email         string
	PhoneNumber   string
	Position      int
	RankingPoints float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.ClubID == "" {
		return fmt.Errorf("player club id is required")
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("player name is required")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("player name must be at most %d characters", MaxNameLength)
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return fmt.Errorf("invalid player email: %s", p.Email)
		}
	}
	if p.Position < 0 {
		return fmt.Errorf("player position must be >= 1")
	}
	if p.RankingPoints < 0 {
		return fmt.Errorf("player ranking points must be >= 0")
	}

	return nil
}

// NormalizeEmail trims and lower-cases an optional email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SortByPosition orders players the way the ladder displays them:
// position ascending, unpositioned players last, ties by creation time.
func SortByPosition(items []Player) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if (a.Position == 0) != (b.Position == 0) {
			return a.Position != 0
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

// PositionUpdate assigns a manual ladder position to a player.
type PositionUpdate struct {
	PlayerID string
	Position int
}

// PointsUpdate stores a new ranking points total for a player.
type PointsUpdate struct {
	PlayerID      string
	RankingPoints float64
}
