package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is an NBA franchise keyed by its ESPN id.
type Team struct {
	ExternalID     string
	Name           string
	Abbreviation   string
	Location       string
	DisplayName    string
	Conference     string
	Division       string
	Color          string
	AlternateColor string
	LogoURL        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ExternalID) == "" {
		return fmt.Errorf("team external id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Abbreviation) == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}

// SameContent reports whether the provider-owned fields are equal.
func (t Team) SameContent(other Team) bool {
	t.CreatedAt, t.UpdatedAt = time.Time{}, time.Time{}
	other.CreatedAt, other.UpdatedAt = time.Time{}, time.Time{}
	return t == other
}

// NormalizeAbbreviation maps provider abbreviations onto one spelling.
// ESPN and BallDontLie disagree on a handful of teams.
func NormalizeAbbreviation(abbr string) string {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	if alias, ok := abbreviationAliases[abbr]; ok {
		return alias
	}
	return abbr
}

var abbreviationAliases = map[string]string{
	"GS":   "GSW",
	"NO":   "NOP",
	"NY":   "NYK",
	"SA":   "SAS",
	"UTAH": "UTA",
	"WSH":  "WAS",
	"PHO":  "PHX",
	"BRK":  "BKN",
}
