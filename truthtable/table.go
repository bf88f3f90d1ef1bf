package truthtable

import (
	"sort"
	"unicode/utf8"

	"github.com/bawdo/proplogic/nodes"
)

// Column holds one labeled column of a truth table.
type Column struct {
	Label  string
	Values []bool
}

// Table is a complete truth table: one column per variable and per
// labeled sub-expression, ordered by label length in characters and then
// lexicographically.
type Table struct {
	Variables []string
	Rows      []nodes.Assignment
	Columns   []Column
	Label     string // label of the root column
}

// Build enumerates every assignment over vars and evaluates root on each.
func Build(root *nodes.Node, vars []string, opts ...Option) (*Table, error) {
	rows := Enumerate(vars)
	evals, err := Collect(root, rows, opts...)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var columns []Column
	column := func(label string) *Column {
		i, ok := index[label]
		if !ok {
			i = len(columns)
			index[label] = i
			columns = append(columns, Column{Label: label, Values: make([]bool, len(rows))})
		}
		return &columns[i]
	}

	for _, name := range vars {
		c := column(name)
		for i, a := range rows {
			c.Values[i] = a[name]
		}
	}
	for _, e := range evals {
		column(e.Label).Values[e.Row] = e.Value
	}
	label := root.Accept(newConfig(root, opts).visitor)

	sort.SliceStable(columns, func(i, j int) bool {
		a, b := columns[i].Label, columns[j].Label
		if na, nb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); na != nb {
			return na < nb
		}
		return a < b
	})

	return &Table{Variables: vars, Rows: rows, Columns: columns, Label: label}, nil
}

// Column returns the column with the given label.
func (t *Table) Column(label string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Label == label {
			return c, true
		}
	}
	return Column{}, false
}

// Result returns the root expression's column.
func (t *Table) Result() Column {
	c, _ := t.Column(t.Label)
	return c
}

// TrueRows returns the indices of the rows where the root holds.
func (t *Table) TrueRows() []int {
	var out []int
	for i, v := range t.Result().Values {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// Grid returns the column labels and the values laid out row by row.
func (t *Table) Grid() ([]string, [][]bool) {
	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label
	}
	grid := make([][]bool, len(t.Rows))
	for r := range grid {
		row := make([]bool, len(t.Columns))
		for i, c := range t.Columns {
			row[i] = c.Values[r]
		}
		grid[r] = row
	}
	return labels, grid
}
