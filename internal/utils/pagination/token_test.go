package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	token := EncodeCursor("job-1234")
	assert.NotEmpty(t, token, "Token should not be empty")

	lastID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, "job-1234", lastID, "Last ID should match after decode")

	// Empty cursor round-trips to an empty ID
	emptyID, err := DecodeCursor(EncodeCursor(""))
	assert.NoError(t, err)
	assert.Equal(t, "", emptyID)
}

func TestDecodeCursorError(t *testing.T) {
	_, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")
}
