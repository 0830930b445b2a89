package play

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinQuarter = 1
	// MaxQuarter allows six overtime periods after regulation.
	MaxQuarter = 10

	regulationQuarterMinutes = 12
	overtimeMinutes          = 5
)

var (
	ErrNotFound = errors.New("play not found")
	// ErrUnknownReference is returned when a tag, player or team referenced
	// by a play tag does not exist.
	ErrUnknownReference = errors.New("play references unknown entity")
)

type Outcome string

const (
	OutcomeMade     Outcome = "MADE"
	OutcomeMissed   Outcome = "MISSED"
	OutcomeTurnover Outcome = "TURNOVER"
	OutcomeFoul     Outcome = "FOUL"
	OutcomeNone     Outcome = "NONE"
)

type ShotZone string

const (
	ShotZonePaint     ShotZone = "PAINT"
	ShotZoneMidrange  ShotZone = "MIDRANGE"
	ShotZoneThree     ShotZone = "THREE"
	ShotZoneFreeThrow ShotZone = "FREE_THROW"
)

// Context is optional detail recorded with a PlayTag.
type Context struct {
	Action             string
	Outcome            Outcome
	ShotZone           ShotZone
	DefenderExternalID string
	Notes              string
}

func (c Context) Validate() error {
	switch c.Outcome {
	case "", OutcomeMade, OutcomeMissed, OutcomeTurnover, OutcomeFoul, OutcomeNone:
	default:
		return fmt.Errorf("invalid context outcome %q", c.Outcome)
	}
	switch c.ShotZone {
	case "", ShotZonePaint, ShotZoneMidrange, ShotZoneThree, ShotZoneFreeThrow:
	default:
		return fmt.Errorf("invalid context shot zone %q", c.ShotZone)
	}
	return nil
}

func (c Context) IsZero() bool {
	return c == Context{}
}

// PlayTag attaches a tag, optionally with player/team context, to a play.
// Position orders tags within the play starting at 0.
type PlayTag struct {
	ID               string
	PlayID           string
	TagID            string
	PlayerExternalID string
	TeamExternalID   string
	Position         int
	Context          Context
	CreatedAt        time.Time
}

// Play is one recorded game event.
type Play struct {
	ID             string
	GameExternalID string
	Quarter        int
	GameTime       string
	Description    string
	CreatedByID    string
	Tags           []PlayTag
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p Play) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("play id is required")
	}
	if strings.TrimSpace(p.GameExternalID) == "" {
		return fmt.Errorf("play game id is required")
	}
	if err := ValidateQuarter(p.Quarter); err != nil {
		return err
	}
	if _, err := ParseGameTime(p.GameTime, p.Quarter); err != nil {
		return err
	}
	for i, t := range p.Tags {
		if strings.TrimSpace(t.TagID) == "" {
			return fmt.Errorf("play tag %d: tag id is required", i)
		}
		if err := t.Context.Validate(); err != nil {
			return fmt.Errorf("play tag %d: %w", i, err)
		}
	}

	return nil
}

func ValidateQuarter(q int) error {
	if q < MinQuarter || q > MaxQuarter {
		return fmt.Errorf("quarter must be between %d and %d", MinQuarter, MaxQuarter)
	}
	return nil
}

// ParseGameTime parses the remaining period clock "MM:SS" and checks it
// fits the period length (12 minutes, 5 in overtime).
func ParseGameTime(v string, quarter int) (time.Duration, error) {
	minPart, secPart, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok || len(secPart) != 2 || minPart == "" || len(minPart) > 2 {
		return 0, fmt.Errorf("game time %q must be MM:SS", v)
	}
	minutes, err := strconv.Atoi(minPart)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("game time %q has invalid minutes", v)
	}
	seconds, err := strconv.Atoi(secPart)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("game time %q has invalid seconds", v)
	}

	limit := regulationQuarterMinutes
	if quarter > 4 {
		limit = overtimeMinutes
	}
	remaining := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if remaining > time.Duration(limit)*time.Minute {
		return 0, fmt.Errorf("game time %q exceeds %d minute period", v, limit)
	}
	return remaining, nil
}

// Before orders plays chronologically within a game: by quarter, then by
// descending clock, then by creation time.
func Before(a, b Play) bool {
	if a.Quarter != b.Quarter {
		return a.Quarter < b.Quarter
	}
	ra, errA := ParseGameTime(a.GameTime, a.Quarter)
	rb, errB := ParseGameTime(b.GameTime, b.Quarter)
	if errA == nil && errB == nil && ra != rb {
		return ra > rb
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// TaggedAction is one PlayTag joined with its play and tag, the row shape
// the analytics read path aggregates over.
type TaggedAction struct {
	PlayID           string
	GameExternalID   string
	Quarter          int
	GameTime         string
	PlayCreatedAt    time.Time
	Position         int
	TagID            string
	TagName          string
	TagCategory      string
	PlayerExternalID string
	TeamExternalID   string
	Context          Context
}

// ActionFilter narrows analytics reads; zero values match everything.
type ActionFilter struct {
	PlayerExternalID string
	TeamExternalID   string
	GameExternalID   string
	Since            time.Time
}
