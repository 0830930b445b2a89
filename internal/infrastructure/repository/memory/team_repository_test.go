package memory

import (
	"context"
	"testing"

	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/syncrun"
	"github.com/courtvision/court-vision/internal/domain/team"
)

func TestTeamRepository_UpsertOutcomes(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository(nil)
	celtics := team.Team{ExternalID: "2", Name: "Celtics", Abbreviation: "BOS"}

	steps := []struct {
		name string
		in   team.Team
		want syncrun.Outcome
	}{
		{name: "insert", in: celtics, want: syncrun.OutcomeCreated},
		{name: "same payload", in: celtics, want: syncrun.OutcomeUnchanged},
		{name: "changed color", in: func() team.Team { c := celtics; c.Color = "008348"; return c }(), want: syncrun.OutcomeUpdated},
	}
	for _, step := range steps {
		got, err := repo.Upsert(ctx, step.in)
		if err != nil {
			t.Fatalf("%s: upsert: %v", step.name, err)
		}
		if got != step.want {
			t.Fatalf("%s: expected %s, got %s", step.name, step.want, got)
		}
	}
}

func TestTeamRepository_AbbreviationAliases(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	got, ok, err := repo.GetByAbbreviation(context.Background(), "gsw")
	if err != nil || !ok {
		t.Fatalf("expected warriors by GSW, ok=%v err=%v", ok, err)
	}
	if got.ExternalID != "9" {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestPlayerRepository_SeasonAveragesSeparateFromProfile(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(SeedPlayers())

	avg := player.SeasonAverages{Season: 2025, GamesPlayed: 10, Points: 27.1}
	if got, _ := repo.UpdateSeasonAverages(ctx, "434", avg); got != syncrun.OutcomeUpdated {
		t.Fatalf("expected first averages write to update, got %s", got)
	}
	if got, _ := repo.UpdateSeasonAverages(ctx, "434", avg); got != syncrun.OutcomeUnchanged {
		t.Fatalf("expected identical averages to be unchanged, got %s", got)
	}

	tatum, _, _ := repo.GetByExternalID(ctx, "434")
	tatum.JerseyNumber = "00"
	if got, _ := repo.Upsert(ctx, tatum); got != syncrun.OutcomeUpdated {
		t.Fatalf("expected profile change to update, got %s", got)
	}

	stored, _, _ := repo.GetByExternalID(ctx, "434")
	if !stored.HasStatistics || stored.SeasonAverages == nil || stored.SeasonAverages.Points != 27.1 {
		t.Fatalf("profile upsert must keep season averages, got %+v", stored.SeasonAverages)
	}
}
