package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bawdo/proplogic/internal/quoting"
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/truthtable"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var driverName = map[string]string{
	"postgres": "pgx",
	"mysql":    "mysql",
	"sqlite":   "sqlite",
}

const (
	runsTable = "proplogic_runs"
	rowsTable = "proplogic_rows"

	maxRows      = 1000
	queryTimeout = 10 * time.Second
)

type dbConn struct {
	db     *sql.DB
	dsn    string
	engine string
}

// savedRun is one evaluated expression as written by save.
type savedRun struct {
	expression string
	dialect    nodes.Dialect
	simplified string
	table      *truthtable.Table
}

func connect(engine, dsn string) (*dbConn, error) {
	driver, ok := driverName[engine]
	if !ok {
		return nil, fmt.Errorf("no driver for engine %q", engine)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if engine == "sqlite" {
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	conn := &dbConn{db: db, dsn: dsn, engine: engine}
	if err := conn.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}
	return conn, nil
}

func (c *dbConn) close() error {
	return c.db.Close()
}

func (c *dbConn) quote(name string) string {
	return quoting.Identifier(c.engine, name)
}

// placeholders returns n bind parameters numbered from 1.
func (c *dbConn) placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		if c.engine == "postgres" {
			ps[i] = "$" + strconv.Itoa(i+1)
		} else {
			ps[i] = "?"
		}
	}
	return strings.Join(ps, ", ")
}

func (c *dbConn) ensureSchema(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	%s VARCHAR(36) PRIMARY KEY,
	%s TEXT NOT NULL,
	%s VARCHAR(16) NOT NULL,
	%s TEXT NOT NULL,
	%s VARCHAR(64) NOT NULL,
	%s TIMESTAMP NOT NULL
)`, c.quote(runsTable), c.quote("id"), c.quote("expression"), c.quote("dialect"),
			c.quote("simplified"), c.quote("variables"), c.quote("created_at")),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	%s VARCHAR(36) NOT NULL,
	%s INTEGER NOT NULL,
	%s VARCHAR(32) NOT NULL,
	%s BOOLEAN NOT NULL,
	PRIMARY KEY (%s, %s)
)`, c.quote(rowsTable), c.quote("run_id"), c.quote("row_index"), c.quote("assignment"),
			c.quote("value"), c.quote("run_id"), c.quote("row_index")),
	}
	for _, stmt := range stmts {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// saveRun stores r and its truth table in one transaction and returns
// the new run's id.
func (c *dbConn) saveRun(ctx context.Context, r savedRun) (string, error) {
	id := uuid.NewString()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRun := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		c.quote(runsTable),
		quoting.Identifiers(c.engine, "id", "expression", "dialect", "simplified", "variables", "created_at"),
		c.placeholders(6))
	_, err = tx.ExecContext(ctx, insertRun,
		id, r.expression, r.dialect.String(), r.simplified,
		strings.Join(r.table.Variables, ","), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	insertRow := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		c.quote(rowsTable),
		quoting.Identifiers(c.engine, "run_id", "row_index", "assignment", "value"),
		c.placeholders(4))
	stmt, err := tx.PrepareContext(ctx, insertRow)
	if err != nil {
		return "", fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	result := r.table.Result()
	for i, a := range r.table.Rows {
		if _, err := stmt.ExecContext(ctx, id, i, assignmentPattern(r.table.Variables, a), result.Values[i]); err != nil {
			return "", fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// history lists the most recent saved runs, optionally only those whose
// expression contains filter.
func (c *dbConn) history(ctx context.Context, filter string, limit int) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s",
		quoting.Identifiers(c.engine, "id", "expression", "dialect", "simplified", "created_at"),
		c.quote(runsTable))
	var params []any
	if filter != "" {
		escape := `'\'`
		if c.engine == "mysql" {
			escape = `'\\'`
		}
		query += fmt.Sprintf(" WHERE %s LIKE %s ESCAPE %s", c.quote("expression"), c.placeholders(1), escape)
		params = append(params, "%"+quoting.EscapeLikePattern(filter)+"%")
	}
	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT %d", c.quote("created_at"), limit)
	return c.query(ctx, query, params)
}

// runRows prints the stored truth table of one run.
func (c *dbConn) runRows(ctx context.Context, id string) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s ORDER BY %s",
		quoting.Identifiers(c.engine, "row_index", "assignment", "value"),
		c.quote(rowsTable), c.quote("run_id"), c.placeholders(1), c.quote("row_index"))
	return c.query(ctx, query, []any{id})
}

func (c *dbConn) query(ctx context.Context, sqlStr string, params []any) (string, error) {
	rows, err := c.db.QueryContext(ctx, sqlStr, params...)
	if err != nil {
		return "", fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return formatRows(rows)
}

// assignmentPattern writes one T or F per variable, in variable order.
func assignmentPattern(vars []string, a nodes.Assignment) string {
	var b strings.Builder
	for _, v := range vars {
		b.WriteString(boolCell(a[v]))
	}
	return b.String()
}

func boolCell(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

func formatRows(rows *sql.Rows) (string, error) {
	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("columns: %w", err)
	}

	var data [][]string
	truncated := false
	for rows.Next() {
		if len(data) >= maxRows {
			truncated = true
			break
		}
		vals := make([]*sql.NullString, len(columns))
		ptrs := make([]any, len(columns))
		for i := range vals {
			vals[i] = &sql.NullString{}
			ptrs[i] = vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return "", fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(columns))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("rows: %w", err)
	}

	result := formatTable(columns, data)
	if truncated {
		result += fmt.Sprintf("(truncated at %d rows)\n", maxRows)
	}
	return result, nil
}

// formatTruthTable prints t as a T/F grid.
func formatTruthTable(t *truthtable.Table) string {
	labels, grid := t.Grid()
	rows := make([][]string, len(grid))
	for i, g := range grid {
		row := make([]string, len(g))
		for j, v := range g {
			row[j] = boolCell(v)
		}
		rows[i] = row
	}
	return formatTable(labels, rows)
}

func formatTable(columns []string, rows [][]string) string {
	if len(columns) == 0 {
		return "(0 rows)\n"
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = displayWidth(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	sep := buildSeparator(widths)

	b.WriteString(sep)
	b.WriteByte('|')
	for i, c := range columns {
		writeCell(&b, c, widths[i])
	}
	b.WriteByte('\n')
	b.WriteString(sep)

	for _, row := range rows {
		b.WriteByte('|')
		for i, cell := range row {
			writeCell(&b, cell, widths[i])
		}
		b.WriteByte('\n')
	}

	b.WriteString(sep)

	n := len(rows)
	if n == 1 {
		b.WriteString("(1 row)\n")
	} else {
		fmt.Fprintf(&b, "(%d rows)\n", n)
	}

	return b.String()
}

// writeCell left-aligns s in a cell of width w. Labels may hold multi-byte
// operators such as "⬇", so padding counts runes.
func writeCell(b *strings.Builder, s string, w int) {
	b.WriteByte(' ')
	b.WriteString(s)
	b.WriteString(strings.Repeat(" ", w-displayWidth(s)))
	b.WriteString(" |")
}

func displayWidth(s string) int {
	return len([]rune(s))
}

func buildSeparator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func sanitizeDSN(dsn string) string {
	// Try parsing as URL (postgres style).
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			// Rebuild manually to avoid percent-encoding the mask.
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// Try MySQL-style DSN: user:pass@tcp(host)/db
	if atIdx := strings.Index(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx >= 0 {
			return userPass[:colonIdx+1] + "****" + dsn[atIdx:]
		}
	}

	return dsn
}
