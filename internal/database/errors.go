package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the stores react to.
const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeUndefinedTable      = "42P01"
	codeUndefinedFunction   = "42883"
)

func hasCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	for _, c := range codes {
		if pgErr.Code == c {
			return true
		}
	}

	return false
}

func IsForeignKeyViolation(err error) bool { return hasCode(err, codeForeignKeyViolation) }

func IsUniqueViolation(err error) bool { return hasCode(err, codeUniqueViolation) }

func IsCheckViolation(err error) bool { return hasCode(err, codeCheckViolation) }

// IsUndefinedObject reports a missing relation or function, which is how an absent
// precomputed view or aggregate function shows up.
func IsUndefinedObject(err error) bool {
	return hasCode(err, codeUndefinedTable, codeUndefinedFunction)
}
