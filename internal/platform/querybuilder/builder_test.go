package querybuilder

import (
	"reflect"
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("club_id", "c1"), IsNull("deleted_at")).
		OrderBy("position ASC NULLS LAST", "created_at ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE club_id = $1 AND deleted_at IS NULL ORDER BY position ASC NULLS LAST, created_at ASC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAndIn(t *testing.T) {
	query, args, err := Select("m.id", "w.name").
		From("matches m").
		Join("JOIN players w ON w.id = m.winner_id").
		Where(InStrings("m.id", []string{"m1", "m2"}), Expr("m.date_played >= ?", "2025-01-01")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT m.id, w.name FROM matches m JOIN players w ON w.id = m.winner_id WHERE m.id IN ($1, $2) AND m.date_played >= $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"m1", "m2", "2025-01-01"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("players").Where(InStrings("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("clubs").
		Columns("id", "name").
		Values("c1", "Riverside").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO clubs (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "c1" || args[1] != "Riverside" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	if _, _, err := InsertInto("clubs").Columns("id", "name").Values("c1").ToSQL(); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("name", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("matches").Where(Eq("id", "m1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM matches WHERE id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("matches").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID        string    `db:"id"`
		Name      string    `db:"name"`
		Skipped   string    `db:"-"`
		CreatedAt time.Time `db:"created_at"`
		internal  string
	}

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := InsertModel("clubs", row{ID: "c1", Name: "Riverside", CreatedAt: created, internal: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO clubs (id, name, created_at) VALUES ($1, $2, $3)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"c1", "Riverside", created}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
