package content

import "fmt"

// Table is a header row plus data rows of display strings.
type Table struct {
	Header []string   `yaml:"header" json:"header"`
	Rows   [][]string `yaml:"rows" json:"rows"`
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := Table{Header: append([]string(nil), t.Header...)}
	if t.Rows != nil {
		out.Rows = make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			out.Rows[i] = append([]string(nil), row...)
		}
	}
	return out
}

// Validate requires a header and rows as wide as the header.
func (t Table) Validate() error {
	if len(t.Header) == 0 {
		return fmt.Errorf("table header is empty")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row %d has %d cells, header has %d", i, len(row), len(t.Header))
		}
	}
	return nil
}

// Change records one canned substitution made by Fix.
type Change struct {
	Row    int
	Column int
	From   string
	To     string
	Reason string
}

type substitution struct {
	to     string
	reason string
}

var fixes = map[string]substitution{
	"NaN":                  {to: "Missing Data", reason: "Replaced 'NaN' with 'Missing Data' to indicate a blank entry."},
	"":                     {to: "Missing Data", reason: "Replaced 'NaN' with 'Missing Data' to indicate a blank entry."},
	"Not a number":         {to: "Valid Number", reason: "Replaced 'Not a number' with a valid placeholder."},
	"xyz123 fake feedback": {to: "Valid feedback", reason: "Replaced fake feedback with a valid response."},
	"one hundred":          {to: "$100", reason: "Replaced inconsistent format with a correct dollar amount."},
}

// RemovalReason is reported once per RemoveInvalid call.
const RemovalReason = "Removed invalid entry due to missing or incorrect data."

// Fix applies the fixed substitution list to every data cell. The input is
// not modified.
func Fix(t Table) (Table, []Change) {
	out := t.Clone()
	var changes []Change
	for r, row := range out.Rows {
		for c, cell := range row {
			sub, ok := fixes[cell]
			if !ok {
				continue
			}
			row[c] = sub.to
			changes = append(changes, Change{Row: r, Column: c, From: cell, To: sub.to, Reason: sub.reason})
		}
	}
	return out, changes
}

// RemoveInvalid drops rows holding an empty, "NaN" or "Not a number" cell.
// The input is not modified.
func RemoveInvalid(t Table) (Table, int) {
	out := Table{Header: append([]string(nil), t.Header...), Rows: [][]string{}}
	removed := 0
	for _, row := range t.Rows {
		if isInvalidRow(row) {
			removed++
			continue
		}
		out.Rows = append(out.Rows, append([]string(nil), row...))
	}
	return out, removed
}

func isInvalidRow(row []string) bool {
	for _, cell := range row {
		switch cell {
		case "", "NaN", "Not a number":
			return true
		}
	}
	return false
}
