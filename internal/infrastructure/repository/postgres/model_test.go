package postgres

import (
	"testing"
	"time"

	"github.com/courtvision/court-vision/internal/domain/play"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/tag"
)

func TestDecodeContext_EmptyIsZero(t *testing.T) {
	ctx, err := decodeContext(nil)
	if err != nil {
		t.Fatalf("decode empty context: %v", err)
	}
	if !ctx.IsZero() {
		t.Fatalf("expected zero context, got %+v", ctx)
	}

	ctx, err = decodeContext([]byte(`{"outcome":"MADE","shotZone":"THREE","defenderId":"1629029"}`))
	if err != nil {
		t.Fatalf("decode context: %v", err)
	}
	if ctx.Outcome != play.OutcomeMade || ctx.ShotZone != play.ShotZoneThree || ctx.DefenderExternalID != "1629029" {
		t.Fatalf("unexpected context: %+v", ctx)
	}
}

func TestEncodeContext_OmitsEmptyFields(t *testing.T) {
	raw, err := encodeContext(play.Context{Outcome: play.OutcomeMissed})
	if err != nil {
		t.Fatalf("encode context: %v", err)
	}
	if raw != `{"outcome":"MISSED"}` {
		t.Fatalf("unexpected jsonb: %s", raw)
	}
}

func TestSyncRunToRow_NeverNilMessages(t *testing.T) {
	started := time.Date(2026, 1, 10, 6, 0, 0, 0, time.UTC)
	run := syncrun.Run{
		ID:      "run-1",
		Status:  syncrun.StatusSuccess,
		Summary: syncrun.Summary{Entity: syncrun.EntityTeams, Created: 30, StartedAt: started, FinishedAt: started.Add(time.Second)},
	}

	row := syncRunToRow(run)
	if row.ErrorMessages == nil {
		t.Fatalf("error_messages must be an empty array, not NULL")
	}
	back := syncRunFromRow(row)
	if back.Summary.Created != 30 || back.Summary.Entity != syncrun.EntityTeams || back.Status != syncrun.StatusSuccess {
		t.Fatalf("unexpected run: %+v", back)
	}
}

func TestTagInsert_DefaultsSuggestions(t *testing.T) {
	builder, err := tagInsert(tagFixture())
	if err != nil {
		t.Fatalf("tag insert: %v", err)
	}
	query, args, err := builder.OnConflictDoNothing().ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	want := "INSERT INTO tags (id, name, category, subcategory, description, triggers, suggestions) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if args[5] != "[]" {
		t.Fatalf("expected empty trigger array, got %v", args[5])
	}
}

func tagFixture() tag.Tag {
	return tag.Tag{ID: "timeout", Name: "Timeout", Category: tag.CategorySpecial}
}
