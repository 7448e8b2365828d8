package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator_FirstMessageWins(t *testing.T) {
	v := New()
	v.Check(false, "place_name", "must be provided")
	v.Check(false, "place_name", "must not be more than 255 characters long")
	v.Check(true, "destination_name", "must be provided")

	require.False(t, v.Valid())
	require.Equal(t, map[string]string{"place_name": "must be provided"}, v.Errors)
}

func TestPermittedValueAndUnique(t *testing.T) {
	require.True(t, PermittedValue("uber", "uber", "rapido"))
	require.False(t, PermittedValue("ola", "uber", "rapido"))

	require.True(t, Unique([]string{"uber", "rapido"}))
	require.False(t, Unique([]string{"uber", "uber"}))
}
