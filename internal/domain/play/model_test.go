package play

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		quarter int
		want    time.Duration
		wantErr bool
	}{
		{in: "11:42", quarter: 1, want: 11*time.Minute + 42*time.Second},
		{in: "0:05", quarter: 4, want: 5 * time.Second},
		{in: "12:00", quarter: 2, want: 12 * time.Minute},
		{in: "12:01", quarter: 2, wantErr: true},
		{in: "4:59", quarter: 5, want: 4*time.Minute + 59*time.Second},
		{in: "6:00", quarter: 5, wantErr: true},
		{in: "5:60", quarter: 1, wantErr: true},
		{in: "530", quarter: 1, wantErr: true},
		{in: "a:10", quarter: 1, wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseGameTime(tc.in, tc.quarter)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestPlay_Validate(t *testing.T) {
	t.Parallel()

	p := Play{
		ID:             "p1",
		GameExternalID: "401585000",
		Quarter:        3,
		GameTime:       "07:12",
		Tags:           []PlayTag{{TagID: "pick-and-roll", Context: Context{Outcome: OutcomeMade, ShotZone: ShotZonePaint}}},
	}
	require.NoError(t, p.Validate())

	p.Quarter = 11
	assert.Error(t, p.Validate())

	p.Quarter = 3
	p.Tags[0].Context.ShotZone = "CORNER"
	assert.Error(t, p.Validate())
}

func TestBefore_OrdersByQuarterThenClock(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	plays := []Play{
		{ID: "c", Quarter: 2, GameTime: "11:00", CreatedAt: base},
		{ID: "b", Quarter: 1, GameTime: "02:00", CreatedAt: base},
		{ID: "a", Quarter: 1, GameTime: "10:30", CreatedAt: base.Add(time.Minute)},
	}
	sort.Slice(plays, func(i, j int) bool { return Before(plays[i], plays[j]) })

	assert.Equal(t, []string{"a", "b", "c"}, []string{plays[0].ID, plays[1].ID, plays[2].ID})
}
