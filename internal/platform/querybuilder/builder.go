// Package querybuilder assembles read-only PostgreSQL SELECT statements with
// numbered placeholders.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders one WHERE term. bind returns the placeholder for a value.
type Condition func(buf *strings.Builder, bind func(any) string)

func Eq(column string, value any) Condition {
	return func(buf *strings.Builder, bind func(any) string) {
		buf.WriteString(column + " = " + bind(value))
	}
}

func Gte(column string, value any) Condition {
	return func(buf *strings.Builder, bind func(any) string) {
		buf.WriteString(column + " >= " + bind(value))
	}
}

// In matches any of values. An empty list matches nothing.
func In[T any](column string, values []T) Condition {
	return func(buf *strings.Builder, bind func(any) string) {
		if len(values) == 0 {
			buf.WriteString("1=0")
			return
		}
		marks := make([]string, len(values))
		for i, v := range values {
			marks[i] = bind(v)
		}
		buf.WriteString(column + " IN (" + strings.Join(marks, ", ") + ")")
	}
}

func IsNull(column string) Condition {
	return func(buf *strings.Builder, _ func(any) string) {
		buf.WriteString(column + " IS NULL")
	}
}

type SelectBuilder struct {
	columns []string
	table   string
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
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var (
		buf  strings.Builder
		args []any
	)
	bind := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	buf.WriteString("SELECT " + strings.Join(b.columns, ", ") + " FROM " + b.table)
	for i, cond := range b.where {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		cond(&buf, bind)
	}
	if len(b.orderBy) > 0 {
		buf.WriteString(" ORDER BY " + strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		buf.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}
