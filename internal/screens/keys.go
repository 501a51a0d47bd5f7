package screens

import "github.com/charmbracelet/bubbles/key"

// Bindings shared by the screens. The shell owns next/back/quit.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	KeyLeft = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	)
	KeyRight = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	)
)

// MoveCursor applies up/down to a cursor over n items, clamping at both ends.
func MoveCursor(cursor, n int, up bool) int {
	if n <= 0 {
		return 0
	}
	if up {
		cursor--
	} else {
		cursor++
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
