package ranking

import (
	"sort"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/match"
	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

// Replay recomputes ranking points from InitialRankingPoints by applying
// policy to every match in play order. Matches that reference players
// outside the supplied set are skipped. The result has one entry per
// player, in input order.
func Replay(players []player.Player, matches []match.Match, policy Policy) []player.PointsUpdate {
	current := make([]player.Player, len(players))
	copy(current, players)
	indexByID := make(map[string]int, len(current))
	for i := range current {
		current[i].RankingPoints = player.InitialRankingPoints
		indexByID[current[i].ID] = i
	}

	ordered := make([]match.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].DatePlayed.Equal(ordered[j].DatePlayed) {
			return ordered[i].DatePlayed.Before(ordered[j].DatePlayed)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	for _, m := range ordered {
		wi, okWinner := indexByID[m.WinnerID]
		li, okLoser := indexByID[m.LoserID]
		if !okWinner || !okLoser || wi == li {
			continue
		}

		standings := SortByRankingPointsDescending(current)
		update, changed := policy.Apply(current[wi], current[li], standings)
		if !changed {
			continue
		}
		current[wi].RankingPoints = update.WinnerPoints
		current[li].RankingPoints = update.LoserPoints
	}

	out := make([]player.PointsUpdate, 0, len(current))
	for _, item := range current {
		out = append(out, player.PointsUpdate{PlayerID: item.ID, RankingPoints: item.RankingPoints})
	}
	return out
}
