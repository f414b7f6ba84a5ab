package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// SQLSTATE codes mapped onto domain errors.
const (
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeNotNullViolation = "23502"
	codeInvalidJSON      = "22P02"
)

// MapError converts driver errors to domain errors, prefixing them with
// "<entity> <key>". Context errors and unknown errors keep their cause.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, key, classify(err))
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeCheckViolation, codeNotNullViolation, codeInvalidJSON:
		return fmt.Errorf("%w: %s", domain.ErrValidation, constraintOf(pgErr))
	}
	return err
}

func constraintOf(e *pgconn.PgError) string {
	switch {
	case e.ConstraintName != "":
		return e.ConstraintName
	case e.ColumnName != "":
		return e.ColumnName
	}
	return e.Message
}
