// Package export writes truth tables and syntax trees to files.
package export

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/bawdo/proplogic/truthtable"
)

//go:embed templates/*
var templateFS embed.FS

// TableRenderer renders truth tables as standalone HTML pages.
type TableRenderer struct {
	tableTemplate *template.Template
}

// NewTableRenderer parses the embedded templates.
func NewTableRenderer() (*TableRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)
	tableTemplate, err := template.New("table.html").ParseFS(trustedFS, "templates/table.html")
	if err != nil {
		return nil, err
	}
	return &TableRenderer{tableTemplate: tableTemplate}, nil
}

// Option configures an HTML page.
type Option func(*tableView)

// WithSimplified shows the simplified expression above the table.
func WithSimplified(s string) Option {
	return func(v *tableView) { v.Simplified = s }
}

type header struct {
	Label  string
	Result bool
}

// tableView is the template's view model.
type tableView struct {
	Title      string
	Simplified string
	Headers    []header
	Rows       [][]bool
	RowCount   int
	TrueCount  int
}

func newTableView(t *truthtable.Table, title string, opts []Option) tableView {
	labels, grid := t.Grid()
	v := tableView{
		Title:     title,
		RowCount:  len(grid),
		TrueCount: len(t.TrueRows()),
	}
	for _, l := range labels {
		v.Headers = append(v.Headers, header{Label: l, Result: l == t.Label})
	}
	v.Rows = grid
	for _, o := range opts {
		o(&v)
	}
	return v
}

// Render writes t as an HTML page titled title.
func (r *TableRenderer) Render(w io.Writer, t *truthtable.Table, title string, opts ...Option) error {
	return r.tableTemplate.Execute(w, newTableView(t, title, opts))
}

// HTML writes t as an HTML page using a fresh renderer.
func HTML(w io.Writer, t *truthtable.Table, title string, opts ...Option) error {
	r, err := NewTableRenderer()
	if err != nil {
		return err
	}
	return r.Render(w, t, title, opts...)
}
