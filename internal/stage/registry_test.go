package stage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryOrder(t *testing.T) {
	reg := Default()
	want := []ID{Intro, Level1, Level2, Level3, Level4, Level5, Level6, Summary}
	stages := reg.Stages()
	require.Len(t, stages, len(want))
	for i, s := range stages {
		assert.Equal(t, want[i], s.ID)
		assert.Equal(t, i, s.Order)
		assert.Equal(t, len(want), s.Total)
	}
	assert.Equal(t, Intro, reg.First().ID)
	assert.Equal(t, Summary, reg.Last().ID)
}

func TestStagesReturnsCopy(t *testing.T) {
	reg := Default()
	stages := reg.Stages()
	stages[0].ID = "mutated"
	assert.Equal(t, Intro, reg.Stages()[0].ID)
}

func TestNextAndPrevious(t *testing.T) {
	reg := Default()

	next, ok, err := reg.Next(Intro)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Level1, next)

	_, ok, err = reg.Next(Summary)
	require.NoError(t, err)
	assert.False(t, ok)

	prev, ok, err := reg.Previous(Summary)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Level6, prev)

	_, ok, err = reg.Previous(Intro)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownIDFails(t *testing.T) {
	reg := Default()
	_, _, err := reg.Next("level9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStage))

	var invalid *InvalidStageError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, ID("level9"), invalid.ID)

	_, _, err = reg.Previous("")
	assert.ErrorIs(t, err, ErrInvalidStage)

	_, err = reg.Lookup("nope")
	assert.ErrorIs(t, err, ErrInvalidStage)
	assert.False(t, reg.Contains("nope"))
}

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name  string
		descs []Descriptor
	}{
		{name: "empty", descs: nil},
		{name: "blank id", descs: []Descriptor{{ID: "a"}, {ID: "  "}}},
		{name: "duplicate", descs: []Descriptor{{ID: "a"}, {ID: "b"}, {ID: "a"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.descs...)
			assert.Error(t, err)
		})
	}
}

func TestTitleFallsBackToID(t *testing.T) {
	reg := MustRegistry(Descriptor{ID: "only"})
	s, err := reg.Lookup("only")
	require.NoError(t, err)
	assert.Equal(t, "only", s.Title)
	assert.True(t, s.IsFirst())
	assert.True(t, s.IsLast())
	assert.Equal(t, 1.0, s.Progress())
}

func TestStageLabel(t *testing.T) {
	s, err := Default().Lookup(Level3)
	require.NoError(t, err)
	assert.Equal(t, "Clean Dirty Data (4/8)", s.Label())
}
