package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("generates_valid_uuid", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil, id.Bytes())
	})

	t.Run("generates_unique_values", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		assert.False(t, a.IsEqual(b))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid_string", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("invalid_string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})

	t.Run("empty_string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("")

		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("wrong_length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})

	t.Run("nil_uuid_bytes_fail_validation", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.UUID

		require.Error(t, id.Validate())
	})

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := a

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
}
