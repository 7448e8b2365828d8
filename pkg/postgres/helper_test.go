package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestViolationHelpers(t *testing.T) {
	unique := fmt.Errorf("insert report: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("insert option: %w", &pgconn.PgError{Code: "23503"})

	require.True(t, IsUniqueViolation(unique))
	require.False(t, IsForeignKeyViolation(unique))
	require.True(t, IsForeignKeyViolation(fk))
	require.False(t, IsUniqueViolation(errors.New("plain")))
	require.False(t, IsUniqueViolation(nil))
}
