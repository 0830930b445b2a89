package syncrun

import (
	"fmt"
	"time"
)

// Entity names a sync job target; the values double as CLI subcommands
// and /internal/sync/{entity} path segments.
type Entity string

const (
	EntityTeams          Entity = "teams"
	EntityPlayers        Entity = "players"
	EntityPlayerAverages Entity = "player-averages"
	EntityGames          Entity = "games"
	EntityAthleteStats   Entity = "athlete-stats"
	EntityTeamStats      Entity = "team-stats"
	EntityAll            Entity = "all"
)

var entities = map[Entity]struct{}{
	EntityTeams:          {},
	EntityPlayers:        {},
	EntityPlayerAverages: {},
	EntityGames:          {},
	EntityAthleteStats:   {},
	EntityTeamStats:      {},
	EntityAll:            {},
}

func ParseEntity(v string) (Entity, error) {
	e := Entity(v)
	if _, ok := entities[e]; !ok {
		return "", fmt.Errorf("unknown sync entity %q", v)
	}
	return e, nil
}

// Outcome is what an idempotent upsert did to the stored row.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

const maxErrorMessages = 50

// Summary counts what one sync job did. Unchanged rows count as skipped.
type Summary struct {
	Entity        Entity
	Created       int
	Updated       int
	Skipped       int
	Errors        int
	ErrorMessages []string
	SkipReason    string
	StartedAt     time.Time
	FinishedAt    time.Time
}

func NewSummary(entity Entity, startedAt time.Time) *Summary {
	return &Summary{Entity: entity, StartedAt: startedAt}
}

func (s *Summary) Record(outcome Outcome) {
	switch outcome {
	case OutcomeCreated:
		s.Created++
	case OutcomeUpdated:
		s.Updated++
	default:
		s.Skipped++
	}
}

func (s *Summary) Skip() {
	s.Skipped++
}

// AddErrorf counts an error; only the first messages are kept.
func (s *Summary) AddErrorf(format string, args ...any) {
	s.Errors++
	if len(s.ErrorMessages) < maxErrorMessages {
		s.ErrorMessages = append(s.ErrorMessages, fmt.Sprintf(format, args...))
	}
}

// Merge folds another summary's counters into s.
func (s *Summary) Merge(other Summary) {
	s.Created += other.Created
	s.Updated += other.Updated
	s.Skipped += other.Skipped
	s.Errors += other.Errors
	for _, msg := range other.ErrorMessages {
		if len(s.ErrorMessages) >= maxErrorMessages {
			break
		}
		s.ErrorMessages = append(s.ErrorMessages, fmt.Sprintf("%s: %s", other.Entity, msg))
	}
}

func (s *Summary) Finish(at time.Time) {
	s.FinishedAt = at
}

func (s Summary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

func (s Summary) Status() Status {
	processed := s.Created + s.Updated + s.Skipped
	switch {
	case s.SkipReason != "":
		return StatusSkipped
	case s.Errors == 0:
		return StatusSuccess
	case processed > 0:
		return StatusPartial
	default:
		return StatusFailed
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: created=%d updated=%d skipped=%d errors=%d duration=%s",
		s.Entity, s.Created, s.Updated, s.Skipped, s.Errors, s.Duration().Round(time.Millisecond))
}

// Run is a persisted sync summary.
type Run struct {
	ID      string
	Summary Summary
	Status  Status
}
