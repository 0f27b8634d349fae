// Package suppress_db is a small fluent PostgreSQL query builder for pgx
// connection pools. Queries are assembled with chained calls and rendered
// with positional parameter binding, and results are converted through a
// caller-supplied row function.
//
//	user, err := suppress_db.Select("users", userFromRow).
//	    Field("id").Field("name").Field("email").
//	    Where("id", "= $", 42).
//	    QueryOne(ctx, conn)
package suppress_db

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FromRowFn converts the current row into a value of type T.
type FromRowFn[T any] func(rows pgx.Rows, val *T) error

type whereClause struct {
	column    string
	condition string
	values    []any
}

type setClause struct {
	column string
	value  any
}

type QueryBuilder[T any] struct {
	operation  string
	table      string
	fields     []string
	where      []whereClause
	set        []setClause
	sort       []string
	returning  []string
	limit      int
	conversion FromRowFn[T]
}

func newBuilder[T any](operation string, table string, conversion FromRowFn[T]) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		operation:  operation,
		table:      table,
		fields:     []string{},
		where:      []whereClause{},
		set:        []setClause{},
		sort:       []string{},
		returning:  []string{},
		limit:      -1,
		conversion: conversion,
	}
}

func Select[T any](table string, conversion FromRowFn[T]) *QueryBuilder[T] {
	return newBuilder("SELECT", table, conversion)
}

func Insert[T any](table string, conversion FromRowFn[T]) *QueryBuilder[T] {
	return newBuilder("INSERT", table, conversion)
}

func Update[T any](table string, conversion FromRowFn[T]) *QueryBuilder[T] {
	return newBuilder("UPDATE", table, conversion)
}

func Delete[T any](table string, conversion FromRowFn[T]) *QueryBuilder[T] {
	return newBuilder("DELETE", table, conversion)
}

// Field adds a column to the SELECT list. With no fields, "*" is selected.
func (q *QueryBuilder[T]) Field(name string) *QueryBuilder[T] {
	q.fields = append(q.fields, name)
	return q
}

// Where adds a filter. Each "$" in the condition is replaced with the next
// positional parameter, bound to the values in order:
//
//	Where("active", "= $", true)
//	Where("deleted_at", "IS NULL")
func (q *QueryBuilder[T]) Where(column string, condition string, values ...any) *QueryBuilder[T] {
	q.where = append(q.where, whereClause{column: column, condition: condition, values: values})
	return q
}

// Set assigns a column value for INSERT and UPDATE operations.
func (q *QueryBuilder[T]) Set(column string, value any) *QueryBuilder[T] {
	q.set = append(q.set, setClause{column: column, value: value})
	return q
}

func (q *QueryBuilder[T]) SortAsc(column string) *QueryBuilder[T] {
	q.sort = append(q.sort, column+" ASC")
	return q
}

func (q *QueryBuilder[T]) SortDesc(column string) *QueryBuilder[T] {
	q.sort = append(q.sort, column+" DESC")
	return q
}

func (q *QueryBuilder[T]) Limit(n int) *QueryBuilder[T] {
	q.limit = n
	return q
}

// Returning adds a RETURNING clause so writes can be read back through the
// row conversion function.
func (q *QueryBuilder[T]) Returning(columns ...string) *QueryBuilder[T] {
	q.returning = append(q.returning, columns...)
	return q
}

// Build renders the SQL statement and its bound arguments.
func (q *QueryBuilder[T]) Build() (string, []any) {
	var sql strings.Builder
	args := []any{}

	switch q.operation {
	case "SELECT":
		sql.WriteString("SELECT ")
		if len(q.fields) == 0 {
			sql.WriteString("*")
		} else {
			sql.WriteString(strings.Join(q.fields, ", "))
		}
		sql.WriteString(" FROM ")
		sql.WriteString(q.table)
	case "INSERT":
		sql.WriteString("INSERT INTO ")
		sql.WriteString(q.table)
		sql.WriteString(" (")
		placeholders := make([]string, 0, len(q.set))
		for _, clause := range q.set {
			args = append(args, clause.value)
			placeholders = append(placeholders, "$"+strconv.Itoa(len(args)))
		}
		columns := make([]string, 0, len(q.set))
		for _, clause := range q.set {
			columns = append(columns, clause.column)
		}
		sql.WriteString(strings.Join(columns, ", "))
		sql.WriteString(") VALUES (")
		sql.WriteString(strings.Join(placeholders, ", "))
		sql.WriteString(")")
	case "UPDATE":
		sql.WriteString("UPDATE ")
		sql.WriteString(q.table)
		sql.WriteString(" SET ")
		assignments := make([]string, 0, len(q.set))
		for _, clause := range q.set {
			args = append(args, clause.value)
			assignments = append(assignments, clause.column+" = $"+strconv.Itoa(len(args)))
		}
		sql.WriteString(strings.Join(assignments, ", "))
	case "DELETE":
		sql.WriteString("DELETE FROM ")
		sql.WriteString(q.table)
	}

	if len(q.where) > 0 {
		sql.WriteString(" WHERE ")
		conditions := make([]string, 0, len(q.where))
		for _, clause := range q.where {
			rest := clause.condition
			var condition strings.Builder
			for _, value := range clause.values {
				marker := strings.Index(rest, "$")
				if marker < 0 {
					break
				}
				args = append(args, value)
				condition.WriteString(rest[:marker])
				condition.WriteString("$")
				condition.WriteString(strconv.Itoa(len(args)))
				rest = rest[marker+1:]
			}
			condition.WriteString(rest)
			conditions = append(conditions, clause.column+" "+condition.String())
		}
		sql.WriteString(strings.Join(conditions, " AND "))
	}
	if len(q.sort) > 0 {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(q.sort, ", "))
	}
	if q.limit >= 0 {
		sql.WriteString(" LIMIT ")
		sql.WriteString(strconv.Itoa(q.limit))
	}
	if len(q.returning) > 0 {
		sql.WriteString(" RETURNING ")
		sql.WriteString(strings.Join(q.returning, ", "))
	}
	return sql.String(), args
}

// QueryOne runs the query and converts the first row. Returns a QueryError
// wrapping NoRowError when the result set is empty.
func (q *QueryBuilder[T]) QueryOne(ctx context.Context, db *pgxpool.Conn) (*T, error) {
	sql, args := q.Build()
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{table: q.table, cause: err}
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, &QueryError{table: q.table, cause: NoRowError{}}
	}
	var val T
	if err := q.conversion(rows, &val); err != nil {
		return nil, &QueryError{table: q.table, cause: err}
	}
	return &val, nil
}

// QueryMany runs the query and converts every row.
func (q *QueryBuilder[T]) QueryMany(ctx context.Context, db *pgxpool.Conn) ([]*T, error) {
	sql, args := q.Build()
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{table: q.table, cause: err}
	}
	defer rows.Close()
	results := []*T{}
	for rows.Next() {
		var val T
		if err := q.conversion(rows, &val); err != nil {
			return nil, &QueryError{table: q.table, cause: err}
		}
		results = append(results, &val)
	}
	return results, nil
}

// Execute runs the query without reading any rows back.
func (q *QueryBuilder[T]) Execute(ctx context.Context, db *pgxpool.Conn) error {
	sql, args := q.Build()
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return &QueryError{table: q.table, cause: err}
	}
	return nil
}

func BeginTransaction(ctx context.Context, conn *pgxpool.Conn) (pgx.Tx, error) {
	return conn.Begin(ctx)
}

func EndTransaction(ctx context.Context, tx pgx.Tx) error {
	return tx.Commit(ctx)
}
