package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxScore_TopPerformers(t *testing.T) {
	t.Parallel()

	box := BoxScore{Players: []PlayerGameStat{
		{PlayerExternalID: "1", Points: 10},
		{PlayerExternalID: "2", Points: 30, Rebounds: 10},
		{PlayerExternalID: "3", Points: 20, Assists: 12},
		{PlayerExternalID: "4", Points: 10},
	}}

	top := box.TopPerformers(3)
	assert.Len(t, top, 3)
	assert.Equal(t, "2", top[0].PlayerExternalID)
	assert.Equal(t, "3", top[1].PlayerExternalID)
	assert.Equal(t, "1", top[2].PlayerExternalID)

	assert.Len(t, box.TopPerformers(10), 4)
}

func TestBoxScore_Team(t *testing.T) {
	t.Parallel()

	box := BoxScore{Teams: []TeamGameStat{{TeamExternalID: "13", Points: 110}}}
	got, ok := box.Team("13")
	assert.True(t, ok)
	assert.Equal(t, 110, got.Points)

	_, ok = box.Team("2")
	assert.False(t, ok)
	assert.False(t, box.IsEmpty())
}
