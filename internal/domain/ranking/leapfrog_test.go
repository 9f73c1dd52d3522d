package ranking

import (
	"reflect"
	"testing"

	"github.com/difaziotennis-rgb/Ladder/internal/domain/player"
)

func standingsOf(ids ...string) []player.Player {
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, player.Player{ID: id})
	}
	return out
}

func TestComputeLeapfrogUpdate_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		winner    player.Player
		loser     player.Player
		standings []player.Player
		want      Update
	}{
		{
			name:      "expected result top beats fourth",
			winner:    player.Player{ID: "w", RankingPoints: 1500},
			loser:     player.Player{ID: "l", RankingPoints: 1000},
			standings: standingsOf("w", "a", "b", "l", "c"),
			want:      Update{WinnerPoints: 1510, LoserPoints: 995},
		},
		{
			name:      "upset bottom beats top",
			winner:    player.Player{ID: "w", RankingPoints: 900},
			loser:     player.Player{ID: "l", RankingPoints: 1800},
			standings: standingsOf("l", "a", "b", "c", "w"),
			want:      Update{WinnerPoints: 2250, LoserPoints: 890},
		},
		{
			name:      "equal rank index takes upset branch",
			winner:    player.Player{ID: "w", RankingPoints: 1000},
			loser:     player.Player{ID: "l", RankingPoints: 1100},
			standings: standingsOf("a", "b"),
			want:      Update{WinnerPoints: 1100 + 50, LoserPoints: 990},
		},
		{
			name:      "negative gap still earns minimum bonus",
			winner:    player.Player{ID: "w", RankingPoints: 1000},
			loser:     player.Player{ID: "l", RankingPoints: 3},
			standings: standingsOf("l", "w"),
			want:      Update{WinnerPoints: 23, LoserPoints: 990},
		},
		{
			name:      "odd gap keeps half point",
			winner:    player.Player{ID: "w", RankingPoints: 1000},
			loser:     player.Player{ID: "l", RankingPoints: 1101},
			standings: standingsOf("l", "w"),
			want:      Update{WinnerPoints: 1151.5, LoserPoints: 990},
		},
		{
			name:      "expected loser floors at zero",
			winner:    player.Player{ID: "w", RankingPoints: 10},
			loser:     player.Player{ID: "l", RankingPoints: 2},
			standings: standingsOf("w", "l"),
			want:      Update{WinnerPoints: 20, LoserPoints: 0},
		},
		{
			name:      "upset loser floors at zero",
			winner:    player.Player{ID: "w", RankingPoints: 4},
			loser:     player.Player{ID: "l", RankingPoints: 30},
			standings: standingsOf("l", "w"),
			want:      Update{WinnerPoints: 50, LoserPoints: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeLeapfrogUpdate(tc.winner, tc.loser, tc.standings)
			if got != tc.want {
				t.Fatalf("unexpected update: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestComputeLeapfrogUpdate_MissingPlayerRanksAtBottom(t *testing.T) {
	winner := player.Player{ID: "ghost", RankingPoints: 1200}
	loser := player.Player{ID: "l", RankingPoints: 1000}

	got := ComputeLeapfrogUpdate(winner, loser, standingsOf("a", "l"))
	want := Update{WinnerPoints: 1000 + MinUpsetBonus, LoserPoints: 1190}
	if got != want {
		t.Fatalf("missing winner must take upset branch: got %+v, want %+v", got, want)
	}

	got = ComputeLeapfrogUpdate(loser, winner, standingsOf("a", "l"))
	want = Update{WinnerPoints: 1010, LoserPoints: 1195}
	if got != want {
		t.Fatalf("missing loser must rank below listed winner: got %+v, want %+v", got, want)
	}
}

func TestComputeLeapfrogUpdate_Properties(t *testing.T) {
	points := []float64{0, 3, 5, 9, 10, 250, 999.5, 1000, 1801}
	standings := standingsOf("a", "b", "c", "d")

	for _, wp := range points {
		for _, lp := range points {
			for wi := range standings {
				for li := range standings {
					if wi == li {
						continue
					}
					winner := player.Player{ID: standings[wi].ID, RankingPoints: wp}
					loser := player.Player{ID: standings[li].ID, RankingPoints: lp}
					got := ComputeLeapfrogUpdate(winner, loser, standings)

					if got.WinnerPoints < 0 || got.LoserPoints < 0 {
						t.Fatalf("negative points for w=%v l=%v: %+v", wp, lp, got)
					}

					var want Update
					if wi < li {
						want = Update{WinnerPoints: wp + 10, LoserPoints: max(0, lp-5)}
					} else {
						want = Update{WinnerPoints: lp + max(20, 0.5*(lp-wp)), LoserPoints: max(0, wp-10)}
					}
					if got != want {
						t.Fatalf("w=%v(rank %d) l=%v(rank %d): got %+v, want %+v", wp, wi, lp, li, got, want)
					}
				}
			}
		}
	}
}

func TestComputeLeapfrogUpdate_IsPure(t *testing.T) {
	winner := player.Player{ID: "w", RankingPoints: 900}
	loser := player.Player{ID: "l", RankingPoints: 1800}
	standings := []player.Player{
		{ID: "l", RankingPoints: 1800},
		{ID: "w", RankingPoints: 900},
	}
	snapshot := append([]player.Player(nil), standings...)

	first := ComputeLeapfrogUpdate(winner, loser, standings)
	second := ComputeLeapfrogUpdate(winner, loser, standings)
	if first != second {
		t.Fatalf("repeated calls differ: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(standings, snapshot) {
		t.Fatalf("standings mutated: %+v", standings)
	}
	if winner.RankingPoints != 900 || loser.RankingPoints != 1800 {
		t.Fatalf("inputs mutated")
	}
}

func TestSortByRankingPointsDescending(t *testing.T) {
	input := []player.Player{
		{ID: "first-1000", RankingPoints: 1000},
		{ID: "second-1000", RankingPoints: 1000},
		{ID: "500", RankingPoints: 500},
		{ID: "1200", RankingPoints: 1200},
		{ID: "third-1000", RankingPoints: 1000},
	}
	snapshot := append([]player.Player(nil), input...)

	got := SortByRankingPointsDescending(input)

	want := []string{"1200", "first-1000", "second-1000", "third-1000", "500"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("index %d: got %s, want %s", i, got[i].ID, id)
		}
	}
	if !reflect.DeepEqual(input, snapshot) {
		t.Fatalf("input slice mutated: %+v", input)
	}
}

func TestSortByRankingPointsDescending_EqualPointsKeepOrder(t *testing.T) {
	got := SortByRankingPointsDescending([]player.Player{
		{ID: "a", RankingPoints: 1000},
		{ID: "b", RankingPoints: 1000},
		{ID: "c", RankingPoints: 500},
	})
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}
