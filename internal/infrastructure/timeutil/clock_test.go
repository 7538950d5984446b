package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := NewRealClock().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestMockClock(t *testing.T) {
	clock := NewMockClockFromString("2026-01-01T08:00:00Z")
	assert.Equal(t, time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), clock.Now())

	clock.Advance(90 * time.Minute)
	assert.Equal(t, time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC), clock.Now())

	clock.AdvanceDays(2)
	assert.Equal(t, time.Date(2026, 1, 3, 9, 30, 0, 0, time.UTC), clock.Now())

	fixed := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(fixed)
	assert.Equal(t, fixed, clock.Now())
}

func TestNewMockClockFromString_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { NewMockClockFromString("not-a-time") })
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid date", input: "2026-01-01", want: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "wrong layout", input: "01 Jan 2026", wantErr: true},
		{name: "invalid day", input: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "YYYY-MM-DD")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalISODate(t *testing.T) {
	got, err := ParseOptionalISODate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalISODate("2026-03-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.March, got.Month())

	_, err = ParseOptionalISODate("15/03/2026")
	assert.Error(t, err)
}
