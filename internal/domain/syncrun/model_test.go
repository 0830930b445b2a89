package syncrun

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_RecordAndStatus(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 10, 6, 0, 0, 0, time.UTC)
	s := NewSummary(EntityTeams, start)
	s.Record(OutcomeCreated)
	s.Record(OutcomeUpdated)
	s.Record(OutcomeUnchanged)
	s.Finish(start.Add(2 * time.Second))

	assert.Equal(t, 1, s.Created)
	assert.Equal(t, 1, s.Updated)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, StatusSuccess, s.Status())
	assert.Equal(t, 2*time.Second, s.Duration())

	s.AddErrorf("team %s: %s", "13", "boom")
	assert.Equal(t, StatusPartial, s.Status())
	assert.Equal(t, []string{"team 13: boom"}, s.ErrorMessages)
}

func TestSummary_StatusFailedAndSkipped(t *testing.T) {
	t.Parallel()

	s := NewSummary(EntityGames, time.Now())
	s.AddErrorf("page 1: timeout")
	assert.Equal(t, StatusFailed, s.Status())

	offseason := NewSummary(EntityAthleteStats, time.Now())
	offseason.SkipReason = "offseason"
	assert.Equal(t, StatusSkipped, offseason.Status())
}

func TestSummary_ErrorMessagesCapped(t *testing.T) {
	t.Parallel()

	s := NewSummary(EntityPlayers, time.Now())
	for i := 0; i < maxErrorMessages+10; i++ {
		s.AddErrorf("player %d", i)
	}
	assert.Equal(t, maxErrorMessages+10, s.Errors)
	assert.Len(t, s.ErrorMessages, maxErrorMessages)
}

func TestParseEntity(t *testing.T) {
	t.Parallel()

	e, err := ParseEntity("athlete-stats")
	require.NoError(t, err)
	assert.Equal(t, EntityAthleteStats, e)

	_, err = ParseEntity("fixtures")
	assert.Error(t, err)
}
