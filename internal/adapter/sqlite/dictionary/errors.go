package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/heartmarshall/svenska-backend/internal/domain"
)

// mapError converts database/sql and go-sqlite3 errors to domain errors.
// key names the row (usually a Swedish word) for the message.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %q: %w", entity, key, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", entity, key, domain.ErrNotFound)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrAlreadyExists)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrNotFound)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %q: %w", entity, key, err)
}
