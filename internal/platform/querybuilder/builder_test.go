package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "full_name").
		From("players").
		Where(Eq("team_external_id", "13"), ILike("full_name", ContainsPattern("james"))).
		OrderBy("full_name").
		Limit(25).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, full_name FROM players WHERE team_external_id = $1 AND full_name ILIKE $2 ORDER BY full_name LIMIT 25"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "13" || args[1] != "%james%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAndExpr(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := Select("pt.tag_id", "COUNT(*)").
		From("play_tags pt").
		Join("JOIN plays p ON p.id = pt.play_id").
		Where(In("pt.tag_id", []any{"pnr", "iso"}), Expr("p.created_at >= ?", since)).
		OrderBy("pt.tag_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT pt.tag_id, COUNT(*) FROM play_tags pt JOIN plays p ON p.id = pt.play_id WHERE pt.tag_id IN ($1, $2) AND p.created_at >= $3 ORDER BY pt.tag_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("id").From("games").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM games WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected empty IN rendering: %s %+v", query, args)
	}
}

func TestInsertBuilder_OnConflictUpdate(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("external_id", "name", "abbreviation").
		Values("13", "Lakers", "LAL").
		OnConflictUpdate([]string{"external_id"}, "name", "abbreviation").
		Returning("(xmax = 0) AS inserted").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (external_id, name, abbreviation) VALUES ($1, $2, $3) ON CONFLICT (external_id) DO UPDATE SET name = EXCLUDED.name, abbreviation = EXCLUDED.abbreviation RETURNING (xmax = 0) AS inserted"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "LAL" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_OnConflictDoNothingWithoutTarget(t *testing.T) {
	query, _, err := InsertInto("tags").Columns("id", "name").Values("pnr", "Pick and Roll").OnConflictDoNothing().ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}
	want := "INSERT INTO tags (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("tags").Columns("id", "name").Values("pnr").ToSQL()
	if err == nil {
		t.Fatalf("expected row width error")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("plays").
		Set("description", "late clock iso").
		SetExpr("updated_at", "NOW()").
		SetExpr("quarter", "GREATEST(?, 1)", 4).
		Where(Eq("id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE plays SET description = $1, updated_at = NOW(), quarter = GREATEST($2, 1) WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "late clock iso" || args[1] != 4 || args[2] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"james":    "%james%",
		"%":        `%\%%`,
		"o_neal":   `%o\_neal%`,
		`back\sl`: `%back\\sl%`,
	}
	for term, want := range cases {
		if got := ContainsPattern(term); got != want {
			t.Fatalf("ContainsPattern(%q): want %q, got %q", term, want, got)
		}
	}
}

type upsertRow struct {
	ExternalID string    `db:"external_id"`
	Name       string    `db:"name"`
	CreatedAt  time.Time `db:"created_at"`
	internal   string
	Skipped    string `db:"-"`
}

func TestUpsertModel(t *testing.T) {
	row := upsertRow{ExternalID: "13", Name: "Lakers", internal: "x"}
	builder, err := UpsertModel("teams", row, []string{"external_id"})
	if err != nil {
		t.Fatalf("prepare upsert: %v", err)
	}
	query, args, err := builder.
		OnConflictSet("updated_at = NOW()").
		Returning("(xmax = 0) AS inserted").
		ToSQL()
	if err != nil {
		t.Fatalf("build upsert: %v", err)
	}

	wantQuery := "INSERT INTO teams (external_id, name, created_at) VALUES ($1, $2, $3) ON CONFLICT (external_id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW() WHERE (teams.name) IS DISTINCT FROM (EXCLUDED.name) RETURNING (xmax = 0) AS inserted"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
	if cols := Columns(&row); len(cols) != 3 || cols[0] != "external_id" {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}
