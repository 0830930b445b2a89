package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Validate(t *testing.T) {
	t.Parallel()

	valid := Tag{
		ID:          "pick-and-roll",
		Name:        "Pick and Roll",
		Category:    CategoryOffense,
		Triggers:    []Trigger{{Kind: TriggerAfterTag, Value: "Screen"}},
		Suggestions: []string{"Drive", "Pass"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Tag)
	}{
		{name: "missing id", mutate: func(tg *Tag) { tg.ID = "" }},
		{name: "bad category", mutate: func(tg *Tag) { tg.Category = "SCREEN" }},
		{name: "bad trigger kind", mutate: func(tg *Tag) { tg.Triggers = []Trigger{{Kind: "WHEN", Value: "x"}} }},
		{name: "empty trigger value", mutate: func(tg *Tag) { tg.Triggers = []Trigger{{Kind: TriggerClock}} }},
		{name: "duplicate suggestion", mutate: func(tg *Tag) { tg.Suggestions = []string{"Drive", "Drive"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tg := valid
			tc.mutate(&tg)
			assert.Error(t, tg.Validate())
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, err := ParseCategory("defense")
	require.NoError(t, err)
	assert.Equal(t, CategoryDefense, c)

	_, err = ParseCategory("screen")
	assert.Error(t, err)
}
