package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixAppliesCannedSubstitutions(t *testing.T) {
	j := MustDefault()
	tests := []struct {
		name    string
		source  int
		changes int
		row     int
		col     int
		want    string
	}{
		{"emails fake feedback", 0, 3, 3, 1, "Valid feedback"},
		{"emails NaN", 0, 3, 4, 0, "Missing Data"},
		{"spreadsheet not a number", 1, 2, 3, 1, "Valid Number"},
		{"spreadsheet blank", 1, 2, 5, 1, "Missing Data"},
		{"crm blank name", 2, 2, 4, 0, "Missing Data"},
		{"crm words to dollars", 2, 2, 5, 3, "$100"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := j.Cleaning.Items[tc.source].Table
			out, changes := Fix(in)
			assert.Len(t, changes, tc.changes)
			assert.Equal(t, tc.want, out.Rows[tc.row][tc.col])
			assert.Equal(t, in.Header, out.Header)
		})
	}
}

func TestFixDoesNotMutateInput(t *testing.T) {
	in := Table{Header: []string{"A"}, Rows: [][]string{{"NaN"}, {"ok"}}}
	out, changes := Fix(in)
	require.Len(t, changes, 1)
	assert.Equal(t, Change{Row: 0, Column: 0, From: "NaN", To: "Missing Data", Reason: changes[0].Reason}, changes[0])
	assert.Equal(t, "NaN", in.Rows[0][0])
	assert.Equal(t, "Missing Data", out.Rows[0][0])
}

func TestFixLeavesDollarTypoAlone(t *testing.T) {
	in := Table{Header: []string{"Amount"}, Rows: [][]string{{"$xyz"}}}
	out, changes := Fix(in)
	assert.Empty(t, changes)
	assert.Equal(t, "$xyz", out.Rows[0][0])
}

func TestRemoveInvalid(t *testing.T) {
	j := MustDefault()
	tests := []struct {
		name    string
		source  int
		removed int
		kept    int
	}{
		{"emails", 0, 1, 5},
		{"spreadsheets", 1, 2, 4},
		{"crm", 2, 1, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := j.Cleaning.Items[tc.source].Table
			out, removed := RemoveInvalid(in)
			assert.Equal(t, tc.removed, removed)
			assert.Len(t, out.Rows, tc.kept)
			assert.Len(t, in.Rows, 6)
		})
	}
}

func TestTableCloneIsDeep(t *testing.T) {
	in := Table{Header: []string{"A", "B"}, Rows: [][]string{{"1", "2"}}}
	out := in.Clone()
	out.Header[0] = "Z"
	out.Rows[0][1] = "9"
	assert.Equal(t, "A", in.Header[0])
	assert.Equal(t, "2", in.Rows[0][1])
}
