package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBasho(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	testCases := []struct {
		now      time.Time
		expected string
	}{
		{now: time.Date(2024, 1, 14, 0, 0, 0, 0, tokyo), expected: "202401"},
		{now: time.Date(2024, 2, 28, 0, 0, 0, 0, tokyo), expected: "202401"},
		{now: time.Date(2024, 11, 10, 0, 0, 0, 0, tokyo), expected: "202411"},
		{now: time.Date(2024, 12, 31, 23, 59, 0, 0, tokyo), expected: "202411"},
		{now: time.Date(2025, 7, 1, 0, 0, 0, 0, tokyo), expected: "202507"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Basho(test.now).String())
	}
}

func TestFixedImpl(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, tokyo)
	fixed := FixedImpl{Time: now}

	require.Equal(t, now, fixed.Now())
	require.Equal(t, tokyo, fixed.Location())
}
