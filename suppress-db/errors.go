package suppress_db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoRowError signals that a query expected data but the result set was empty.
type NoRowError struct {
}

func (e NoRowError) Error() string {
	return "No data found"
}

type PostgresErrorCode string

const (
	UniqueViolation     PostgresErrorCode = "23505"
	ForeignKeyViolation PostgresErrorCode = "23503"
	NotNullViolation    PostgresErrorCode = "23502"
)

var titleCaser = cases.Title(language.English)

// QueryError wraps any failure from a built query with the table it ran
// against, so the message can name the entity in user-facing terms.
type QueryError struct {
	table string
	cause error
}

// Error produces a friendly message: the table name is title-cased and
// singularized, with empty results rendered as "<Entity> not found".
func (e *QueryError) Error() string {
	friendlyName := titleCaser.String(strings.ReplaceAll(e.table, "_", " "))
	if _, empty := e.cause.(NoRowError); !empty {
		return friendlyName + ": " + e.cause.Error()
	}
	if strings.HasSuffix(friendlyName, "ies") {
		friendlyName = friendlyName[:len(friendlyName)-3] + "y"
	}
	friendlyName = strings.TrimSuffix(friendlyName, "s")
	return friendlyName + " not found"
}

func (e *QueryError) Unwrap() error {
	return e.cause
}

// Violates reports whether the underlying failure is the given Postgres
// constraint violation.
func (e *QueryError) Violates(code PostgresErrorCode) bool {
	var pgError *pgconn.PgError
	if errors.As(e.cause, &pgError) {
		return pgError.Code == string(code)
	}
	return false
}
