package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(createdAt, "9b2f-uuid")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, createdAt, decodedAt)
	assert.Equal(t, "9b2f-uuid", decodedID)

	// Non-UTC input is normalised
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	decodedAt, _, err = DecodeCursor(EncodeCursor(local, "id"))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := map[string]string{
		"not base64":   "%%%",
		"missing id":   base64.URLEncoding.EncodeToString([]byte("2023-05-15T14:30:45Z")),
		"empty id":     base64.URLEncoding.EncodeToString([]byte("2023-05-15T14:30:45Z|")),
		"bad time":     base64.URLEncoding.EncodeToString([]byte("yesterday|id")),
		"empty string": "",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeCursor(token)
			assert.Error(t, err)
		})
	}
}
