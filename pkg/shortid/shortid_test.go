package shortid

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookingIDPattern = regexp.MustCompile(`^\d{6}-[0-9A-Z]{5}$`)
	requestIDPattern = regexp.MustCompile(`^[0-9A-Z]{5}$`)
)

func TestBookingIDFormat(t *testing.T) {
	now := time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		id := BookingID(now)
		require.True(t, bookingIDPattern.MatchString(id), "unexpected booking id %q", id)
		assert.Equal(t, "251015-", id[:7])
	}
}

func TestRequestIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := RequestID()
		require.True(t, requestIDPattern.MatchString(id), "unexpected request id %q", id)
	}
}

func TestBookingIDDatePrefixFollowsClock(t *testing.T) {
	id := BookingID(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "240102-", id[:7])
}
