package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/procurement_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"serialization failure", &pgconn.PgError{Code: pgSerializationFailure}, apperrors.ErrConflict},
		{"deadlock", fmt.Errorf("batch: %w", &pgconn.PgError{Code: pgDeadlockDetected}), apperrors.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError(tt.err, "write"), tt.target)
		})
	}

	other := mapWriteError(errors.New("connection reset"), "write")
	var appErr *apperrors.AppError
	assert.ErrorAs(t, other, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.NotErrorIs(t, other, apperrors.ErrConflict)
}

func TestPgErrorCode(t *testing.T) {
	assert.Equal(t, pgUniqueViolation, pgErrorCode(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t, "", pgErrorCode(errors.New("plain")))
}
