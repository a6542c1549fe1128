package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), "expected %q to be recognized", s)
	}

	assert.False(t, Status("Bogus").Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("open").Valid(), "status labels are case-sensitive")
}

func TestAllowAnyTransition(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			assert.True(t, AllowAnyTransition(from, to))
		}
	}
}

func TestTableTransitionPolicy(t *testing.T) {
	policy := TableTransitionPolicy(map[Status][]Status{
		StatusOpen:       {StatusInProgress, StatusCancelled},
		StatusInProgress: {StatusClosed, StatusCancelled},
	})

	assert.True(t, policy(StatusOpen, StatusInProgress))
	assert.True(t, policy(StatusInProgress, StatusClosed))
	assert.False(t, policy(StatusOpen, StatusClosed))

	// Terminal states have no entry and allow nothing.
	assert.False(t, policy(StatusClosed, StatusOpen))
	assert.False(t, policy(StatusCancelled, StatusInProgress))
}

func TestGPSCoordinateRoundTrip(t *testing.T) {
	gps := &GPSCoordinate{Latitude: -23.5505, Longitude: -46.6333}

	raw, err := gps.Serialize()
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	parsed := ParseGPS(raw)
	assert.Equal(t, gps, parsed)
}

func TestParseGPSBadColumn(t *testing.T) {
	assert.Nil(t, ParseGPS(""))
	assert.Nil(t, ParseGPS("not-json"))
}
