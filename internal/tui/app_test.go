package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/kingrea/dashboard-mayhem/internal/config"
	"github.com/kingrea/dashboard-mayhem/internal/journey"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/screens/questions"
	"github.com/kingrea/dashboard-mayhem/internal/screens/screentest"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestContinueWalksTheJourney(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, stage.Intro, app.Current().ID)

	want := []stage.ID{stage.Level1, stage.Level2, stage.Level3, stage.Level4, stage.Level5}
	for _, id := range want {
		app = press(t, app, "n")
		assert.Equal(t, id, app.Current().ID)
		assert.Equal(t, id, app.active.Stage(), "active screen follows the controller")
	}

	// four chart pairs: three Next Example presses stay on level5
	for i := 0; i < 3; i++ {
		app = press(t, app, "n")
		assert.Equal(t, stage.Level5, app.Current().ID)
	}
	app = press(t, app, "n")
	assert.Equal(t, stage.Level6, app.Current().ID)
	assert.InDelta(t, 0.875, app.controller.Progress(), 1e-9)

	app = press(t, app, "n")
	assert.Equal(t, stage.Summary, app.Current().ID)
	assert.InDelta(t, 1.0, app.controller.Progress(), 1e-9)

	app = press(t, app, "b")
	assert.Equal(t, stage.Level6, app.Current().ID)
}

func TestBackHiddenOnIntro(t *testing.T) {
	app := newTestApp(t)
	assert.NotContains(t, app.View(), "[b] ← Back")

	app = press(t, app, "b")
	assert.Equal(t, stage.Intro, app.Current().ID)
	assert.Equal(t, "You are at the start of the journey.", app.StatusMsg())
	assert.NoError(t, app.Err())

	app = press(t, app, "n")
	assert.Contains(t, app.View(), "[b] ← Back")
}

func TestSummaryContinueRestarts(t *testing.T) {
	app := newTestApp(t)
	app = send(t, app, screens.TransitionMsg{Kind: stage.KindGoTo, Target: stage.Summary})
	require.Equal(t, stage.Summary, app.Current().ID)
	assert.Contains(t, app.View(), "Restart Journey")

	app = press(t, app, "n")
	assert.Equal(t, stage.Intro, app.Current().ID)
	assert.InDelta(t, 0.125, app.controller.Progress(), 1e-9)
	assert.Equal(t, 1, countRestarts(app))
}

func TestRevisitResetsScreen(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "n", "enter")
	level1, ok := app.Screen(stage.Level1).(*questions.Screen)
	require.True(t, ok)
	require.True(t, level1.Revealed(0))

	app = press(t, app, "n", "b")
	require.Equal(t, stage.Level1, app.Current().ID)
	assert.False(t, level1.Revealed(0))
}

func TestInvalidTransitionIsReported(t *testing.T) {
	app := newTestApp(t)
	app = send(t, app, screens.TransitionMsg{Kind: stage.KindGoTo, Target: "level9"})
	assert.Equal(t, stage.Intro, app.Current().ID)
	require.Error(t, app.Err())
	assert.ErrorIs(t, app.Err(), stage.ErrInvalidStage)
	assert.Contains(t, app.View(), app.Err().Error())

	app = send(t, app, screens.TransitionMsg{Kind: stage.KindRetreat})
	assert.ErrorIs(t, app.Err(), stage.ErrNoPreviousStage)

	app = send(t, app, screens.TransitionMsg{Kind: stage.KindAdvance})
	assert.NoError(t, app.Err())
	assert.Empty(t, app.StatusMsg())
}

func TestExportFromSummary(t *testing.T) {
	app := newTestApp(t)
	app = send(t, app, screens.TransitionMsg{Kind: stage.KindGoTo, Target: stage.Summary})
	app = press(t, app, "e")
	require.NoError(t, app.Err())

	id := app.Session().ID()
	dir := app.config.ExportDir()
	for _, name := range []string{"summary-" + id + ".json", "summary-" + id + ".md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	report, err := journey.ReadJSON(filepath.Join(dir, "summary-"+id+".json"))
	require.NoError(t, err)
	assert.True(t, report.Completed)
	assert.NotEmpty(t, report.Log)
	assert.Contains(t, app.View(), "Summary exported")
}

func TestJourneyLogPanel(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "n")
	view := app.View()
	assert.Contains(t, view, "LOG · journey.log")
	assert.Contains(t, view, "advance · Dashboard Mayhem → Ask Better Questions (2/8)")
}

func TestQuitReturnsQuitCommand(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(screentest.Key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	app := newTestApp(t)
	app = press(t, app, "n")
	assert.NotContains(t, app.View(), "reveal")
	app = press(t, app, "?")
	assert.Contains(t, app.View(), "reveal")
}

func newTestApp(t *testing.T, opts ...AppOption) *App {
	t.Helper()
	projectDir := t.TempDir()
	if err := config.InitMayhemDir(projectDir); err != nil {
		t.Fatalf("init mayhem dir: %v", err)
	}
	baseOpts := []AppOption{WithLogger(zap.NewNop()), WithMarkdownStyle("notty")}
	app, err := NewApp(projectDir, append(baseOpts, opts...)...)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return model.(*App)
}

func press(t *testing.T, app *App, keys ...string) *App {
	t.Helper()
	for _, k := range keys {
		model, cmd := app.Update(screentest.Key(k))
		app = runCommands(t, model, cmd)
	}
	return app
}

func send(t *testing.T, app *App, msg tea.Msg) *App {
	t.Helper()
	model, cmd := app.Update(msg)
	return runCommands(t, model, cmd)
}

func runCommands(t *testing.T, model tea.Model, cmd tea.Cmd) *App {
	t.Helper()
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}
		nextModel, nextCmd := app.Update(msg)
		app, ok = nextModel.(*App)
		if !ok {
			t.Fatalf("unexpected model type: %T", nextModel)
		}
		cmd = nextCmd
	}
	return app
}

func countRestarts(app *App) int {
	lines, _ := app.logbook.Tail(100)
	n := 0
	for _, line := range lines {
		if strings.Contains(line, string(stage.KindRestart)+" · ") {
			n++
		}
	}
	return n
}
