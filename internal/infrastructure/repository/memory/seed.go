package memory

import (
	"time"

	"github.com/courtvision/court-vision/internal/domain/game"
	"github.com/courtvision/court-vision/internal/domain/player"
	"github.com/courtvision/court-vision/internal/domain/tag"
	"github.com/courtvision/court-vision/internal/domain/taxonomy"
	"github.com/courtvision/court-vision/internal/domain/team"
	"github.com/courtvision/court-vision/internal/domain/user"
)

// SystemUserID owns plays created without an explicit author.
const SystemUserID = "system"

func SeedUsers() []user.User {
	return []user.User{
		{ID: SystemUserID, Email: "system@courtvision.local", DisplayName: "System", Role: user.RoleAdmin},
	}
}

func SeedTags() []tag.Tag {
	return taxonomy.MustDefault().Tags()
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ExternalID: "2", Name: "Celtics", Abbreviation: "BOS", Location: "Boston", DisplayName: "Boston Celtics", Conference: "East", Division: "Atlantic", Color: "008348", AlternateColor: "ffffff"},
		{ExternalID: "18", Name: "Knicks", Abbreviation: "NY", Location: "New York", DisplayName: "New York Knicks", Conference: "East", Division: "Atlantic", Color: "1d428a", AlternateColor: "f58426"},
		{ExternalID: "13", Name: "Lakers", Abbreviation: "LAL", Location: "Los Angeles", DisplayName: "Los Angeles Lakers", Conference: "West", Division: "Pacific", Color: "552583", AlternateColor: "fdb927"},
		{ExternalID: "9", Name: "Warriors", Abbreviation: "GS", Location: "Golden State", DisplayName: "Golden State Warriors", Conference: "West", Division: "Pacific", Color: "fdb927", AlternateColor: "1d428a"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ExternalID: "434", FirstName: "Jayson", LastName: "Tatum", Position: "F", TeamExternalID: "2", JerseyNumber: "0"},
		{ExternalID: "145", FirstName: "Jaylen", LastName: "Brown", Position: "G-F", TeamExternalID: "2", JerseyNumber: "7"},
		{ExternalID: "73", FirstName: "Jalen", LastName: "Brunson", Position: "G", TeamExternalID: "18", JerseyNumber: "11"},
		{ExternalID: "237", FirstName: "LeBron", LastName: "James", Position: "F", TeamExternalID: "13", JerseyNumber: "23"},
		{ExternalID: "17896075", FirstName: "Austin", LastName: "Reaves", Position: "G", TeamExternalID: "13", JerseyNumber: "15"},
		{ExternalID: "115", FirstName: "Stephen", LastName: "Curry", Position: "G", TeamExternalID: "9", JerseyNumber: "30"},
	}
}

// SeedGames returns a couple of fixtures so the tagging flow works
// without running a sync first.
func SeedGames(now time.Time) []game.Game {
	day := now.UTC().Truncate(24 * time.Hour)
	return []game.Game{
		{
			ExternalID:         "401585001",
			Date:               day.Add(-30 * time.Minute),
			HomeTeamExternalID: "2",
			AwayTeamExternalID: "18",
			HomeScore:          112,
			AwayScore:          104,
			Status:             game.StatusFinished,
			Season:             game.SeasonFor(day),
			Period:             4,
		},
		{
			ExternalID:         "401585002",
			Date:               day.Add(26 * time.Hour),
			HomeTeamExternalID: "13",
			AwayTeamExternalID: "9",
			Status:             game.StatusScheduled,
			Season:             game.SeasonFor(day),
		},
	}
}
