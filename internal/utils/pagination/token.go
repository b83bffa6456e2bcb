package pagination

import (
	"encoding/base64"
	"fmt"
)

// List endpoints page with opaque cursor tokens rather than offsets so that
// a page boundary survives inserts into the catalog. A token encodes the
// ID of the last entry on the previous page.

// EncodeCursor creates a base64 encoded cursor from the last-seen entity ID.
func EncodeCursor(lastID string) string {
	return base64.StdEncoding.EncodeToString([]byte(lastID))
}

// DecodeCursor parses a cursor back into the last-seen entity ID.
func DecodeCursor(token string) (string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return string(decodedBytes), nil
}
