package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
	assert.NotPanics(t, func() { MustDefault() })
}

func TestValidate_ReportsUnknownActionsAndLabels(t *testing.T) {
	t.Parallel()

	tables := Default()
	tables.Transitions["Alley Oop"] = []string{Dunk}
	tables.SingleActions[Dunk] = "spectacular"
	tables.Sequences[Step{From: Drive, To: "Euro Step"}] = LabelGood

	err := tables.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `transitions references unknown action "Alley Oop"`)
	assert.Contains(t, err.Error(), `single action "Dunk" has invalid label "spectacular"`)
	assert.Contains(t, err.Error(), `sequences references unknown action "Euro Step"`)
}

func TestLabel_Score(t *testing.T) {
	t.Parallel()

	for label, want := range map[Label]float64{
		LabelExcellent:    4,
		LabelGood:         3,
		LabelQuestionable: 1,
		LabelRisky:        0,
	} {
		got, ok := label.Score()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestTags_SeedFromQuickActions(t *testing.T) {
	t.Parallel()

	tags := Default().Tags()
	require.Len(t, tags, len(Default().QuickActions))

	var pnr, layup bool
	for _, tg := range tags {
		require.NoError(t, tg.Validate(), tg.Name)
		switch tg.ID {
		case "pick-and-roll":
			pnr = true
			assert.Equal(t, Default().Transitions[PickAndRoll], tg.Suggestions)
		case "layup":
			layup = true
			assert.NotEmpty(t, tg.Triggers)
		}
	}
	assert.True(t, pnr)
	assert.True(t, layup)
}
