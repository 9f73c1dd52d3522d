package ranking

import (
	"math"
	"sort"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

const (
	ExpectedWinBonus    float64 = 10
	ExpectedLossPenalty float64 = 5
	MinUpsetBonus       float64 = 20
	UpsetGapFactor      float64 = 0.5
	UpsetLossPenalty    float64 = 10
)

// Update holds the new absolute point totals after a match.
type Update struct {
	WinnerPoints float64
	LoserPoints  float64
}

// ComputeLeapfrogUpdate applies the leapfrog rule to a match outcome.
// standings order defines the current rank of each player. A winner
// ranked strictly above the loser gets a small expected-result gain;
// anything else is an upset and the winner takes the loser's total
// plus a bonus of at least MinUpsetBonus.
func ComputeLeapfrogUpdate(winner, loser player.Player, standings []player.Player) Update {
	winnerRank := rankIndex(winner.ID, standings)
	loserRank := rankIndex(loser.ID, standings)

	if winnerRank < loserRank {
		return Update{
			WinnerPoints: winner.RankingPoints + ExpectedWinBonus,
			LoserPoints:  math.Max(0, loser.RankingPoints-ExpectedLossPenalty),
		}
	}

	pointsDifference := loser.RankingPoints - winner.RankingPoints
	leapfrogBonus := math.Max(MinUpsetBonus, pointsDifference*UpsetGapFactor)

	return Update{
		WinnerPoints: math.Max(0, loser.RankingPoints+leapfrogBonus),
		LoserPoints:  math.Max(0, winner.RankingPoints-UpsetLossPenalty),
	}
}

// rankIndex returns the zero-based standing of playerID. A player missing
// from standings is ranked at the bottom, len(standings), so a missing
// winner never counts as an expected result.
func rankIndex(playerID string, standings []player.Player) int {
	for i, item := range standings {
		if item.ID == playerID {
			return i
		}
	}
	return len(standings)
}

// SortByRankingPointsDescending returns a copy of players ordered by
// ranking points, highest first. Equal totals keep their input order.
func SortByRankingPointsDescending(players []player.Player) []player.Player {
	out := make([]player.Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RankingPoints > out[j].RankingPoints
	})
	return out
}
