package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateToString(t *testing.T) {
	day := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-08-31", DateToString(day, DateFormat))
}

func TestStringToDate(t *testing.T) {
	day, err := StringToDate("2026-08-31", DateFormat)
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.August, day.Month())
	assert.Equal(t, 31, day.Day())
}
