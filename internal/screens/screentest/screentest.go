// Package screentest holds helpers for driving screens in tests.
package screentest

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// Context returns a context for id backed by the built-in journey and a
// plain markdown style that does not query the terminal.
func Context(id stage.ID) screens.Context {
	st, err := stage.Default().Lookup(id)
	if err != nil {
		panic(err)
	}
	return screens.Context{
		Stage:    st,
		Progress: st.Progress(),
		Journey:  content.MustDefault(),
		Theme:    screens.NewTheme("", "notty"),
	}
}

// Key builds a key message from a key name such as "enter", "down" or "f".
func Key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ", "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

// Press feeds keys to a screen and returns the last command produced.
func Press(s screens.Screen, names ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, name := range names {
		cmd = s.Update(Key(name))
	}
	return cmd
}

// Transition runs cmd and returns the transition it requests, if any.
func Transition(cmd tea.Cmd) (screens.TransitionMsg, bool) {
	if cmd == nil {
		return screens.TransitionMsg{}, false
	}
	msg, ok := cmd().(screens.TransitionMsg)
	return msg, ok
}
