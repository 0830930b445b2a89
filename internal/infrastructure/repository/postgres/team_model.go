package postgres

import (
	"time"

	"github.com/courtvision/court-vision/internal/domain/team"
)

var teamColumns = []string{
	"external_id", "name", "abbreviation", "location", "display_name", "conference",
	"division", "color", "alternate_color", "logo_url", "created_at", "updated_at",
}

type teamTableModel struct {
	ExternalID     string    `db:"external_id"`
	Name           string    `db:"name"`
	Abbreviation   string    `db:"abbreviation"`
	Location       string    `db:"location"`
	DisplayName    string    `db:"display_name"`
	Conference     string    `db:"conference"`
	Division       string    `db:"division"`
	Color          string    `db:"color"`
	AlternateColor string    `db:"alternate_color"`
	LogoURL        string    `db:"logo_url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type teamUpsertModel struct {
	ExternalID     string `db:"external_id"`
	Name           string `db:"name"`
	Abbreviation   string `db:"abbreviation"`
	Location       string `db:"location"`
	DisplayName    string `db:"display_name"`
	Conference     string `db:"conference"`
	Division       string `db:"division"`
	Color          string `db:"color"`
	AlternateColor string `db:"alternate_color"`
	LogoURL        string `db:"logo_url"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ExternalID:     row.ExternalID,
		Name:           row.Name,
		Abbreviation:   row.Abbreviation,
		Location:       row.Location,
		DisplayName:    row.DisplayName,
		Conference:     row.Conference,
		Division:       row.Division,
		Color:          row.Color,
		AlternateColor: row.AlternateColor,
		LogoURL:        row.LogoURL,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func teamToUpsert(t team.Team) teamUpsertModel {
	return teamUpsertModel{
		ExternalID:     t.ExternalID,
		Name:           t.Name,
		Abbreviation:   t.Abbreviation,
		Location:       t.Location,
		DisplayName:    t.DisplayName,
		Conference:     t.Conference,
		Division:       t.Division,
		Color:          t.Color,
		AlternateColor: t.AlternateColor,
		LogoURL:        t.LogoURL,
	}
}
