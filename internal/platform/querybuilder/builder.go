package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errNoTable   = errors.New("table is required")
	errNoColumns = errors.New("columns are required")
)

// argWriter accumulates SQL text and positional ($n) arguments.
type argWriter struct {
	buf  strings.Builder
	args []any
}

func (w *argWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes a fragment whose '?' markers are bound to values in order.
func (w *argWriter) expr(fragment string, values []any) {
	next := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '?' && next < len(values) {
			w.bind(values[next])
			next++
			continue
		}
		w.buf.WriteByte(fragment[i])
	}
}

type Condition interface {
	writeTo(w *argWriter)
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func (c compareCondition) writeTo(w *argWriter) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" ")
	w.buf.WriteString(c.op)
	w.buf.WriteString(" ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

func Gte(column string, value any) Condition {
	return compareCondition{column: column, op: ">=", value: value}
}

func ILike(column string, value any) Condition {
	return compareCondition{column: column, op: "ILIKE", value: value}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ContainsPattern wraps term in '%' wildcards after escaping LIKE
// metacharacters, so the term only ever matches literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type inCondition struct {
	column string
	values []any
}

// In renders "column IN (...)"; an empty list matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) writeTo(w *argWriter) {
	if len(c.values) == 0 {
		w.buf.WriteString("1=0")
		return
	}
	w.buf.WriteString(c.column)
	w.buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.bind(v)
	}
	w.buf.WriteString(")")
}

type exprCondition struct {
	fragment string
	values   []any
}

// Expr is a raw predicate with '?' placeholders.
func Expr(fragment string, values ...any) Condition {
	return exprCondition{fragment: fragment, values: values}
}

func (c exprCondition) writeTo(w *argWriter) {
	w.expr(c.fragment, c.values)
}

func writeWhere(w *argWriter, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.buf.WriteString(" WHERE ")
		} else {
			w.buf.WriteString(" AND ")
		}
		c.writeTo(w)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Join appends a raw join clause such as "JOIN plays p ON p.id = pt.play_id".
func (b *SelectBuilder) Join(clause string) *SelectBuilder {
	b.joins = append(b.joins, strings.TrimSpace(clause))
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select: %w", errNoColumns)
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select: %w", errNoTable)
	}

	var w argWriter
	w.buf.WriteString("SELECT ")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(" FROM ")
	w.buf.WriteString(b.table)
	for _, join := range b.joins {
		w.buf.WriteString(" ")
		w.buf.WriteString(join)
	}
	writeWhere(&w, b.where)
	if len(b.orderBy) > 0 {
		w.buf.WriteString(" ORDER BY ")
		w.buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.buf.WriteString(" LIMIT ")
		w.buf.WriteString(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}

type InsertBuilder struct {
	table          string
	columns        []string
	rows           [][]any
	conflictTarget []string
	conflictUpdate []string
	conflictSet    []string
	onlyIfChanged  bool
	doNothing      bool
	returning      []string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// OnConflictUpdate renders ON CONFLICT (target) DO UPDATE SET col = EXCLUDED.col.
func (b *InsertBuilder) OnConflictUpdate(target []string, columns ...string) *InsertBuilder {
	b.conflictTarget = append([]string(nil), target...)
	b.conflictUpdate = append([]string(nil), columns...)
	b.doNothing = false
	return b
}

// OnConflictSet appends raw assignments such as "updated_at = NOW()".
func (b *InsertBuilder) OnConflictSet(assignments ...string) *InsertBuilder {
	b.conflictSet = append(b.conflictSet, assignments...)
	return b
}

// OnlyIfChanged skips the update when every updated column already holds
// the incoming value, so RETURNING yields no row for unchanged input.
func (b *InsertBuilder) OnlyIfChanged() *InsertBuilder {
	b.onlyIfChanged = true
	return b
}

func (b *InsertBuilder) OnConflictDoNothing(target ...string) *InsertBuilder {
	b.conflictTarget = append([]string(nil), target...)
	b.conflictUpdate = nil
	b.doNothing = true
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert: %w", errNoTable)
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert: %w", errNoColumns)
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert: values are required")
	}

	var w argWriter
	w.buf.WriteString("INSERT INTO ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" (")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.buf.WriteString(", ")
			}
			w.bind(value)
		}
		w.buf.WriteString(")")
	}

	if b.doNothing && len(b.conflictTarget) == 0 {
		w.buf.WriteString(" ON CONFLICT DO NOTHING")
	}
	if len(b.conflictTarget) > 0 {
		w.buf.WriteString(" ON CONFLICT (")
		w.buf.WriteString(strings.Join(b.conflictTarget, ", "))
		w.buf.WriteString(")")
		switch {
		case b.doNothing || len(b.conflictUpdate) == 0:
			w.buf.WriteString(" DO NOTHING")
		default:
			w.buf.WriteString(" DO UPDATE SET ")
			for i, col := range b.conflictUpdate {
				if i > 0 {
					w.buf.WriteString(", ")
				}
				w.buf.WriteString(col)
				w.buf.WriteString(" = EXCLUDED.")
				w.buf.WriteString(col)
			}
			for _, assignment := range b.conflictSet {
				w.buf.WriteString(", ")
				w.buf.WriteString(assignment)
			}
			if b.onlyIfChanged {
				current := make([]string, len(b.conflictUpdate))
				incoming := make([]string, len(b.conflictUpdate))
				for i, col := range b.conflictUpdate {
					current[i] = b.table + "." + col
					incoming[i] = "EXCLUDED." + col
				}
				w.buf.WriteString(" WHERE (")
				w.buf.WriteString(strings.Join(current, ", "))
				w.buf.WriteString(") IS DISTINCT FROM (")
				w.buf.WriteString(strings.Join(incoming, ", "))
				w.buf.WriteString(")")
			}
		}
	}
	if len(b.returning) > 0 {
		w.buf.WriteString(" RETURNING ")
		w.buf.WriteString(strings.Join(b.returning, ", "))
	}

	return w.buf.String(), w.args, nil
}

type setClause struct {
	column   string
	value    any
	fragment *exprCondition
}

type UpdateBuilder struct {
	table     string
	sets      []setClause
	where     []Condition
	returning []string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, fragment string, values ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, fragment: &exprCondition{fragment: fragment, values: values}})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update: %w", errNoTable)
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update: sets are required")
	}

	var w argWriter
	w.buf.WriteString("UPDATE ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(s.column)
		w.buf.WriteString(" = ")
		if s.fragment != nil {
			s.fragment.writeTo(&w)
			continue
		}
		w.bind(s.value)
	}
	writeWhere(&w, b.where)
	if len(b.returning) > 0 {
		w.buf.WriteString(" RETURNING ")
		w.buf.WriteString(strings.Join(b.returning, ", "))
	}

	return w.buf.String(), w.args, nil
}
