package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeToken(date, 42)
	assert.NotEmpty(t, token)

	decodedDate, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate))
	assert.Equal(t, int64(42), decodedID)

	// Non-UTC input comes back as the same instant
	local := time.Date(2024, 5, 15, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	decodedDate, _, err = DecodeToken(EncodeToken(local, 7))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedDate))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|12"))
	_, _, err = DecodeToken(badDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	badID := base64.URLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z|abc"))
	_, _, err = DecodeToken(badID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")

	zeroID := base64.URLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z|0"))
	_, _, err = DecodeToken(zeroID)
	assert.Error(t, err)
}
