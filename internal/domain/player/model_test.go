package player

import (
	"testing"
	"time"
)

func TestSortByPosition(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Player{
		{ID: "unpositioned-late", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "third", Position: 3, CreatedAt: base},
		{ID: "first", Position: 1, CreatedAt: base},
		{ID: "unpositioned-early", CreatedAt: base.Add(time.Hour)},
		{ID: "second-late", Position: 2, CreatedAt: base.Add(time.Minute)},
		{ID: "second-early", Position: 2, CreatedAt: base},
	}

	SortByPosition(items)

	want := []string{"first", "second-early", "second-late", "third", "unpositioned-early", "unpositioned-late"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("index %d: got %s, want %s", i, items[i].ID, id)
		}
	}
}

func TestPlayer_Validate(t *testing.T) {
	valid := Player{ID: "p1", ClubID: "c1", Name: "Ana", Position: 1, RankingPoints: InitialRankingPoints}

	tests := []struct {
		name    string
		mutate  func(p *Player)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Player) {}},
		{name: "missing club", mutate: func(p *Player) { p.ClubID = "" }, wantErr: true},
		{name: "blank name", mutate: func(p *Player) { p.Name = "   " }, wantErr: true},
		{name: "bad email", mutate: func(p *Player) { p.Email = "not-an-email" }, wantErr: true},
		{name: "good email", mutate: func(p *Player) { p.Email = "ana@example.com" }},
		{name: "negative points", mutate: func(p *Player) { p.RankingPoints = -1 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("unexpected normalized email: %q", got)
	}
}
