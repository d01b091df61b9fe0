package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 encoded cursor from a movement's occurrence
// time, creation time and ID. The movement ID keeps the cursor unique even
// when several rows share both timestamps, as the two legs of a composite
// operation always do.
func EncodeToken(occurredAt time.Time, createdAt time.Time, movementID string) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", occurredAt.Format(timeFormat), createdAt.Format(timeFormat), movementID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into occurrence time,
// creation time and movement ID.
func DecodeToken(token string) (time.Time, time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	occurredAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (occurred_at parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	if parts[2] == "" {
		return time.Time{}, time.Time{}, "", fmt.Errorf("invalid pagination token format (empty movement_id)")
	}

	return occurredAt, createdAt, parts[2], nil
}
