package espn

import (
	"strings"
	"time"
)

// Time accepts both RFC3339 and the minute precision form ESPN uses on
// scoreboards, e.g. "2025-01-10T00:30Z".
type Time struct {
	time.Time
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04Z07:00", "2006-01-02T15:04Z"}

func (t *Time) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	var lastErr error
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}

type teamsEnvelope struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team teamRaw `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

type teamRaw struct {
	ID               string `json:"id"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Color            string `json:"color"`
	AlternateColor   string `json:"alternateColor"`
	Logos            []struct {
		Href string `json:"href"`
	} `json:"logos"`
	Logo string `json:"logo"`
}

type scoreboardEnvelope struct {
	Events []eventRaw `json:"events"`
}

type eventRaw struct {
	ID           string           `json:"id"`
	Date         Time             `json:"date"`
	Competitions []competitionRaw `json:"competitions"`
	Status       statusRaw        `json:"status"`
}

type competitionRaw struct {
	ID          string          `json:"id"`
	Date        Time            `json:"date"`
	Competitors []competitorRaw `json:"competitors"`
	Status      statusRaw       `json:"status"`
}

type competitorRaw struct {
	ID       string  `json:"id"`
	HomeAway string  `json:"homeAway"`
	Score    string  `json:"score"`
	Team     teamRaw `json:"team"`
}

type statusRaw struct {
	DisplayClock string `json:"displayClock"`
	Period       int    `json:"period"`
	Type         struct {
		Name      string `json:"name"`
		State     string `json:"state"`
		Completed bool   `json:"completed"`
	} `json:"type"`
}

type summaryEnvelope struct {
	Boxscore struct {
		Teams []struct {
			Team       teamRaw `json:"team"`
			Statistics []struct {
				Name         string `json:"name"`
				DisplayValue string `json:"displayValue"`
			} `json:"statistics"`
		} `json:"teams"`
	} `json:"boxscore"`
	Header struct {
		Competitions []competitionRaw `json:"competitions"`
	} `json:"header"`
}
