package questions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kingrea/dashboard-mayhem/internal/screens/questions"
	"github.com/kingrea/dashboard-mayhem/internal/screens/screentest"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

func TestRevealCards(t *testing.T) {
	s := questions.New()
	s.Enter(screentest.Context(stage.Level1))

	assert.False(t, s.Revealed(0))
	screentest.Press(s, "enter")
	assert.True(t, s.Revealed(0))
	assert.Equal(t, "1 of 3 questions sharpened", s.StatusMsg())

	screentest.Press(s, "down", "down", "down", "enter")
	assert.True(t, s.Revealed(2))
	assert.False(t, s.Revealed(1))
	assert.Contains(t, s.View(80), "Which product category dropped the most in the last quarter?")
}

func TestEnterHidesCardsAgain(t *testing.T) {
	s := questions.New()
	ctx := screentest.Context(stage.Level1)
	s.Enter(ctx)
	screentest.Press(s, "enter", "down", "enter")
	assert.True(t, s.Revealed(1))

	s.Enter(ctx)
	for i := 0; i < 3; i++ {
		assert.False(t, s.Revealed(i))
	}
	assert.Empty(t, s.StatusMsg())
	assert.Contains(t, s.View(80), "Why are sales low?")
}

func TestRevealedOutOfRange(t *testing.T) {
	s := questions.New()
	s.Enter(screentest.Context(stage.Level1))
	assert.False(t, s.Revealed(-1))
	assert.False(t, s.Revealed(99))
}
