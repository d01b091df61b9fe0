package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	occurredAt := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 10, 14, 30, 45, 123456789, time.UTC)
	movementID := "mov-abc-123"

	token := EncodeToken(occurredAt, createdAt, movementID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedOccurredAt, decodedCreatedAt, decodedMovementID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, occurredAt, decodedOccurredAt, "Occurrence time should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Creation time should match after decode")
	assert.Equal(t, movementID, decodedMovementID, "Movement ID should match after decode")

	now := time.Now().UTC()
	nowToken := EncodeToken(now, now, movementID)
	decodedNowOccurred, decodedNowCreated, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNowOccurred), "Occurrence time should match after decode")
	assert.True(t, now.Equal(decodedNowCreated), "Creation time should match after decode")
}

func TestEncodeTokenTiedTimestampsDistinctIDs(t *testing.T) {
	// Both legs of a composite operation carry identical timestamps; only
	// the movement ID separates their cursors.
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	exitToken := EncodeToken(at, at, "mov-exit-leg")
	entryToken := EncodeToken(at, at, "mov-entry-leg")
	assert.NotEqual(t, exitToken, entryToken, "Tied-timestamp cursors must differ by movement ID")

	_, _, exitID, err := DecodeToken(exitToken)
	assert.NoError(t, err)
	_, _, entryID, err := DecodeToken(entryToken)
	assert.NoError(t, err)
	assert.Equal(t, "mov-exit-leg", exitID)
	assert.Equal(t, "mov-entry-leg", entryID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Base64 encoded timestamp without the field separators
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo="
	_, _, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Two timestamps but an empty movement ID segment
	legacyToken := EncodeToken(time.Now().UTC(), time.Now().UTC(), "")
	_, _, _, err = DecodeToken(legacyToken)
	assert.Error(t, err, "Should reject a cursor with no movement ID")
	assert.Contains(t, err.Error(), "movement_id", "Error should mention the missing movement ID")
}
