package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := NewRandomGenerator()
	a, err := g.NewID()
	require.NoError(t, err)
	b, err := g.NewID()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	v, err := NewUUIDGenerator().NewID()
	require.NoError(t, err)

	parsed, err := uuid.Parse(v)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Pick & Roll":      "pick-roll",
		"  Fast Break  ":   "fast-break",
		"Post-Up":          "post-up",
		"3PT Catch&Shoot!": "3pt-catch-shoot",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}
