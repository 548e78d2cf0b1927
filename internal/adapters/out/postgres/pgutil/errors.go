// Package pgutil holds PostgreSQL helpers shared by the gorm repositories.
package pgutil

import (
	"errors"

	"kitchenpos/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Translate turns constraint violations into invalid-argument errors naming param.
// Any other error is returned unchanged.
func Translate(err error, param string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation, ForeignKeyViolation:
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	default:
		return err
	}
}
