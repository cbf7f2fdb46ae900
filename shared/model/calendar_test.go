package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/model"
)

func TestDate_ScanAndValue(t *testing.T) {
	var date model.Date

	require.NoError(t, date.Scan(time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2030-03-01", date.String())

	require.NoError(t, date.Scan([]byte("2031-12-24")))
	value, err := date.Value()
	require.NoError(t, err)
	assert.Equal(t, "2031-12-24", value)

	assert.Error(t, date.Scan("24/12/2031"))
	assert.Error(t, date.Scan(42))
}

func TestNewDate_DropsClock(t *testing.T) {
	date := model.NewDate(time.Date(2030, time.March, 1, 17, 45, 0, 0, time.UTC))

	assert.Equal(t, 0, date.Hour())
	assert.Equal(t, "2030-03-01", date.String())
}

func TestTimeOfDay_ScanAndValue(t *testing.T) {
	var clock model.TimeOfDay

	require.NoError(t, clock.Scan(time.Date(0, time.January, 1, 17, 0, 0, 0, time.UTC)))
	assert.Equal(t, "17:00:00", clock.String())

	require.NoError(t, clock.Scan("08:30:15"))
	value, err := clock.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:30:15", value)

	require.NoError(t, clock.Scan("09:00:00.000000"))
	assert.Equal(t, "09:00:00", clock.String())

	assert.Error(t, clock.Scan("late"))
	assert.Error(t, clock.Scan(nil))
}

func TestNewMetadata(t *testing.T) {
	now := time.Date(2030, time.March, 1, 9, 0, 0, 0, time.UTC)

	metadata := model.NewMetadata("pluto@acme.com", now)

	assert.Equal(t, now, metadata.CreatedAt)
	assert.Equal(t, now, metadata.ModifiedAt)
	assert.Equal(t, "pluto@acme.com", metadata.CreatedBy)
	assert.Equal(t, "pluto@acme.com", metadata.ModifiedBy)
}
