package kanjinum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	testCases := []struct {
		text     string
		expected uint
	}{
		{text: "一", expected: 1},
		{text: "九", expected: 9},
		{text: "十", expected: 10},
		{text: "十八", expected: 18},
		{text: "二十", expected: 20},
		{text: "二十一", expected: 21},
		{text: "四十五", expected: 45},
		{text: "九十九", expected: 99},
		{text: "百", expected: 100},
		{text: "百五", expected: 105},
		{text: "百十二", expected: 112},
		{text: "二百三十", expected: 230},
		{text: " 三 ", expected: 3},
		{text: "17", expected: 17},
		{text: "１７", expected: 17},

		{text: "", expected: 0},
		{text: "枚目", expected: 0},
		{text: "三四", expected: 0},
		{text: "十百", expected: 0},
		{text: "十十", expected: 0},
		{text: "〇十", expected: 0},
		{text: "横綱", expected: 0},
		{text: "三x", expected: 0},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, Convert(test.text), "input %q", test.text)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	names := []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	for n := uint(1); n <= 199; n++ {
		text := ""
		if n >= 100 {
			text += "百"
		}
		tens := (n % 100) / 10
		if tens == 1 {
			text += "十"
		} else if tens > 1 {
			text += names[tens] + "十"
		}
		text += names[n%10]

		require.Equal(t, n, Convert(text), "input %q", text)
	}
}
