package sumo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func TestParseRecord(t *testing.T) {
	testCases := []struct {
		text     string
		expected Record
	}{
		{text: "（6勝2敗）", expected: Record{Wins: 6, Losses: 2}},
		{text: "（1勝0敗3休）", expected: Record{Wins: 1, Losses: 0, Rest: intPtr(3)}},
		{text: "", expected: Record{}},
		{text: "6勝2敗", expected: Record{Wins: 6, Losses: 2}},
		{text: "(10勝5敗)", expected: Record{Wins: 10, Losses: 5}},
		{text: "（１２勝３敗）", expected: Record{Wins: 12, Losses: 3}},
		{text: " 成績（0勝0敗15休） ", expected: Record{Rest: intPtr(15)}},
		{text: "休場", expected: Record{}},
		{text: "六勝二敗", expected: Record{}},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ParseRecord(test.text), test.text)
	}
}

func TestRecordString(t *testing.T) {
	require.Equal(t, "6-2", Record{Wins: 6, Losses: 2}.String())
	require.Equal(t, "1-0-3", Record{Wins: 1, Rest: intPtr(3)}.String())
}
