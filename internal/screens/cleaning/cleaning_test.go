package cleaning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/screens/cleaning"
	"github.com/kingrea/dashboard-mayhem/internal/screens/screentest"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

func TestFixEmails(t *testing.T) {
	s := cleaning.New()
	s.Enter(screentest.Context(stage.Level3))

	screentest.Press(s, "f")
	require.True(t, s.Cleaned(0))
	tbl := s.Table(0)
	assert.Equal(t, "Valid feedback", tbl.Rows[3][1])
	assert.Equal(t, []string{"Missing Data", "No feedback", "Missing Data"}, tbl.Rows[4])
	assert.Equal(t, `Data for "Emails" has been fixed successfully.`, s.Feedback())
	assert.Contains(t, s.Reasons(), "Replaced fake feedback with a valid response.")
	assert.Contains(t, s.View(100), "Valid feedback")
}

func TestRemoveInvalidSpreadsheets(t *testing.T) {
	s := cleaning.New()
	s.Enter(screentest.Context(stage.Level3))

	screentest.Press(s, "down", "x")
	require.True(t, s.Cleaned(1))
	assert.Len(t, s.Table(1).Rows, 4)
	assert.Equal(t, `Invalid entries for "Spreadsheets" have been removed successfully.`, s.Feedback())
	assert.Equal(t, []string{content.RemovalReason}, s.Reasons())
}

func TestSourceCleansOnlyOnce(t *testing.T) {
	s := cleaning.New()
	s.Enter(screentest.Context(stage.Level3))

	screentest.Press(s, "x")
	rows := len(s.Table(0).Rows)
	screentest.Press(s, "f")
	assert.Len(t, s.Table(0).Rows, rows)
	assert.Equal(t, "Emails is already clean", s.StatusMsg())
	assert.Equal(t, []string{content.RemovalReason}, s.Reasons())
}

func TestEnterRestoresDirtyTables(t *testing.T) {
	s := cleaning.New()
	ctx := screentest.Context(stage.Level3)
	dirty := ctx.Journey.Cleaning.Items[0].Table.Clone()
	s.Enter(ctx)
	screentest.Press(s, "f")

	assert.Equal(t, dirty, ctx.Journey.Cleaning.Items[0].Table, "journey content must stay untouched")

	s.Enter(ctx)
	assert.False(t, s.Cleaned(0))
	assert.Equal(t, dirty, s.Table(0))
	assert.Empty(t, s.Feedback())
	assert.Empty(t, s.Reasons())
}
