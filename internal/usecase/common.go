package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-record-system/internal/delivery/http/middleware"

	"github.com/jackc/pgx/v5/pgconn"
)

// Errors shared by several usecases. Retired records stay readable by id
// but are rejected whenever an operation would pull them into new state.
var (
	ErrRecordRetired     = errors.New("record marked for deletion")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return parsed, nil
}

// actorFromContext resolves the authenticated user for audit entries.
// Returns nil when the request carries no identity (e.g. internal calls).
func actorFromContext(ctx context.Context) *uint {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name. Used as a backstop for
// races the pre-checks cannot catch.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
