package predict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kingrea/dashboard-mayhem/internal/screens/predict"
	"github.com/kingrea/dashboard-mayhem/internal/screens/screentest"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

func TestDefaultsPredictUnlikely(t *testing.T) {
	s := predict.New()
	s.Enter(screentest.Context(stage.Level6))

	age, income := s.Inputs()
	assert.Equal(t, 30, age)
	assert.Equal(t, 40000, income)

	_, ok := s.Prediction()
	assert.False(t, ok)

	screentest.Press(s, "p")
	likely, ok := s.Prediction()
	assert.True(t, ok)
	assert.False(t, likely, "the rule is strictly greater than both thresholds")
	assert.Contains(t, s.View(100), "Unlikely to Purchase")
}

func TestAdjustSlidersThenPredict(t *testing.T) {
	s := predict.New()
	s.Enter(screentest.Context(stage.Level6))

	screentest.Press(s, "right", "down", "right", "enter")
	age, income := s.Inputs()
	assert.Equal(t, 31, age)
	assert.Equal(t, 41000, income)

	likely, ok := s.Prediction()
	assert.True(t, ok)
	assert.True(t, likely)
	assert.Contains(t, s.View(100), "$41,000")
}

func TestSlidersClamp(t *testing.T) {
	s := predict.New()
	s.Enter(screentest.Context(stage.Level6))

	for i := 0; i < 100; i++ {
		screentest.Press(s, "left")
	}
	age, _ := s.Inputs()
	assert.Equal(t, 18, age)

	screentest.Press(s, "down")
	for i := 0; i < 100; i++ {
		screentest.Press(s, "right")
	}
	_, income := s.Inputs()
	assert.Equal(t, 100000, income)
}

func TestEnterRestoresDefaults(t *testing.T) {
	s := predict.New()
	ctx := screentest.Context(stage.Level6)
	s.Enter(ctx)
	screentest.Press(s, "right", "right", "p")

	s.Enter(ctx)
	age, _ := s.Inputs()
	assert.Equal(t, 30, age)
	_, ok := s.Prediction()
	assert.False(t, ok)
}
