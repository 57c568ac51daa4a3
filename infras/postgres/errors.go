package postgres

import (
	"errors"

	"github.com/lib/pq"

	"carserv/shared/constant"
)

// IsUniqueViolation reports whether err wraps a Postgres unique-constraint
// violation (duplicate email and the like).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// IsForeignKeyViolation reports whether err wraps a Postgres foreign-key
// violation (booking referencing a missing user).
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation
}
