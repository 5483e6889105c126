package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2025, 7, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(createdAt, "cust-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedAt, "Creation time should match after decode")
	assert.Equal(t, "cust-42", decodedID, "ID should match after decode")
}

func TestDecodeCursor_IDContainingSeparator(t *testing.T) {
	createdAt := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// IDs with the separator character must survive the round trip
	token := EncodeCursor(createdAt, "cust|odd")
	_, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err)
	assert.Equal(t, "cust|odd", decodedID)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "missing separator", token: "bm9zZXBhcmF0b3I="}, // "noseparator"
		{name: "bad timestamp", token: "bm90YXRpbWV8aWQ="},     // "notatime|id"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeCursor(tt.token)
			assert.Error(t, err)
		})
	}
}
