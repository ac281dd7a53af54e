package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	sec, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*3600+30*60, sec)

	sec, err = parseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, sec)

	_, err = parseClock("25:00")
	assert.Error(t, err)

	_, err = parseClock("nope")
	assert.Error(t, err)
}

func TestStayDuration(t *testing.T) {
	days, nights, err := stayDuration("2026-04-01", "2026-04-03")
	require.NoError(t, err)
	assert.Equal(t, 3, days)
	assert.Equal(t, 2, nights)

	days, nights, err = stayDuration("2026-04-01", "2026-04-01")
	require.NoError(t, err)
	assert.Equal(t, 1, days)
	assert.Equal(t, 0, nights)

	_, _, err = stayDuration("2026-04-03", "2026-04-01")
	assert.Error(t, err)

	_, _, err = stayDuration("bad", "2026-04-01")
	assert.Error(t, err)
}
