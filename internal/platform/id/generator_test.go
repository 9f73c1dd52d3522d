package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator()
	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("id is not a uuid: %v", err)
	}
}

func TestSequenceGenerator_NewID(t *testing.T) {
	g := NewSequenceGenerator("player")
	for _, want := range []string{"player-1", "player-2"} {
		got, _ := g.NewID()
		if got != want {
			t.Fatalf("got %s, want %s", got, want)
		}
	}
}
