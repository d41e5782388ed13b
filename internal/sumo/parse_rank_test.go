package sumo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var kanjiDigits = []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

func kanjiNumeral(n int) string {
	text := ""
	if n >= 100 {
		text += "百"
		n %= 100
	}
	switch tens := n / 10; {
	case tens == 1:
		text += "十"
	case tens > 1:
		text += kanjiDigits[tens] + "十"
	}
	return text + kanjiDigits[n%10]
}

func mustMaegashira(t *testing.T, n uint) Maegashira {
	m, err := NewMaegashira(n)
	require.NoError(t, err)
	return m
}

func mustNumbered(t *testing.T, d Division, n uint) Numbered {
	r, err := NewNumbered(d, n)
	require.NoError(t, err)
	return r
}

func TestParseRankOrdinals(t *testing.T) {
	for n := 1; n <= 45; n++ {
		ordinal := kanjiNumeral(n) + "枚目"

		require.Equal(t, mustMaegashira(t, uint(n)), ParseRank("前頭"+ordinal, DivisionUnknown), ordinal)
		require.Equal(t, mustNumbered(t, Makushita, uint(n)), ParseRank("幕下"+ordinal, Jonidan), ordinal)
		require.Equal(t, mustNumbered(t, Sandanme, uint(n)), ParseRank(ordinal, Sandanme), ordinal)
		require.Equal(t, mustMaegashira(t, uint(n)), ParseRank(ordinal, Makuuchi), ordinal)
	}
}

func TestParseRankTitles(t *testing.T) {
	divisions := append([]Division{DivisionUnknown}, Divisions...)
	for _, d := range divisions {
		require.Equal(t, Titled{Title: Yokozuna}, ParseRank("横綱", d))
		slot, ok := ParseSlot("横綱", d, West)
		require.True(t, ok)
		require.Equal(t, Slot{Division: Makuuchi, Side: West, Rank: Titled{Title: Yokozuna}}, slot)
	}

	require.Equal(t, Titled{Title: Ozeki}, ParseRank("大関", DivisionUnknown))
	require.Equal(t, Titled{Title: Sekiwake}, ParseRank("関脇", DivisionUnknown))
	require.Equal(t, Titled{Title: Komusubi}, ParseRank("小結", DivisionUnknown))
	// titles never carry a position
	require.Equal(t, Titled{Title: Ozeki}, ParseRank("大関二枚目", DivisionUnknown))
	require.Equal(t, Titled{Title: Yokozuna}, ParseRank("横綱大関", DivisionUnknown))
}

func TestParseRankTopOfSheet(t *testing.T) {
	require.Equal(t, mustNumbered(t, Juryo, 1), ParseRank("筆頭", Juryo))
	require.Equal(t, mustMaegashira(t, 1), ParseRank("筆頭", Makuuchi))
	require.Nil(t, ParseRank("筆頭", DivisionUnknown))

	require.Equal(t, mustMaegashira(t, 1), ParseRank("前頭筆頭", DivisionUnknown))
	require.Equal(t, mustNumbered(t, Makushita, 1), ParseRank("幕下筆頭", DivisionUnknown))
}

func TestParseRankMaegashiraIsAbsolute(t *testing.T) {
	// positions are not offset by the four titled ranks
	rank := ParseRank("前頭三枚目", DivisionUnknown)
	require.Equal(t, mustMaegashira(t, 3), rank)
	require.Equal(t, "M3", rank.Short())
}

func TestParseRankDivisionNames(t *testing.T) {
	testCases := []struct {
		text     string
		division Division
		expected Rank
	}{
		{text: "前頭", expected: mustMaegashira(t, 1)},
		{text: "十両", expected: mustNumbered(t, Juryo, 1)},
		{text: "十両十四枚目", division: Makuuchi, expected: mustNumbered(t, Juryo, 14)},
		{text: "三段目八十五枚目", expected: mustNumbered(t, Sandanme, 85)},
		{text: "序二段百二枚目", expected: mustNumbered(t, Jonidan, 102)},
		{text: "序ノ口二十枚目", expected: mustNumbered(t, Jonokuchi, 20)},
		{text: "東前頭二枚目", expected: mustMaegashira(t, 2)},
		{text: " 幕下 五枚目 ", expected: mustNumbered(t, Makushita, 5)},
		{text: "幕下五", expected: mustNumbered(t, Makushita, 5)},
		{text: "十八枚目", division: Makushita, expected: mustNumbered(t, Makushita, 18)},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ParseRank(test.text, test.division), test.text)
	}
}

func TestParseRankUnknown(t *testing.T) {
	require.Nil(t, ParseRank("", DivisionUnknown))
	require.Nil(t, ParseRank("abc", DivisionUnknown))
	require.Nil(t, ParseRank("三枚目", DivisionUnknown))

	require.Equal(t, Unplaced{division: Juryo}, ParseRank("abc", Juryo))
	require.Equal(t, Unplaced{division: Jonidan}, ParseRank("", Jonidan))
	require.Equal(t, Unplaced{division: Makuuchi}, ParseRank("前頭xyz", Juryo))
}

func TestParseSlot(t *testing.T) {
	slot, ok := ParseSlot("東小結", DivisionUnknown, SideUnknown)
	require.True(t, ok)
	require.Equal(t, Slot{Division: Makuuchi, Side: East, Rank: Titled{Title: Komusubi}}, slot)
	require.Equal(t, "Ke", slot.Label())

	// the listed rank wins over the table's division
	slot, ok = ParseSlot("前頭十七枚目", Juryo, West)
	require.True(t, ok)
	require.Equal(t, Makuuchi, slot.Division)
	require.Equal(t, "M17w", slot.Label())

	// an explicit side wins over the text
	slot, ok = ParseSlot("西大関", DivisionUnknown, East)
	require.True(t, ok)
	require.Equal(t, East, slot.Side)

	_, ok = ParseSlot("???", DivisionUnknown, East)
	require.False(t, ok)
}

func TestRankConstructors(t *testing.T) {
	_, err := NewMaegashira(0)
	require.Error(t, err)
	_, err = NewNumbered(Makuuchi, 3)
	require.Error(t, err)
	_, err = NewNumbered(DivisionUnknown, 3)
	require.Error(t, err)
	_, err = NewNumbered(Juryo, 0)
	require.Error(t, err)
	_, err = NewUnplaced(DivisionUnknown)
	require.Error(t, err)

	r, err := NewNumbered(Jonokuchi, 12)
	require.NoError(t, err)
	require.Equal(t, Jonokuchi, r.Division())
	require.Equal(t, "Jk12", r.Short())
}

func TestParseDivision(t *testing.T) {
	for _, d := range Divisions {
		parsed, err := ParseDivision(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)

		parsed, err = ParseDivision(d.Japanese())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	parsed, err := ParseDivision("Makushita")
	require.NoError(t, err)
	require.Equal(t, Makushita, parsed)

	parsed, err = ParseDivision("6")
	require.NoError(t, err)
	require.Equal(t, Jonokuchi, parsed)

	_, err = ParseDivision("maezumo")
	require.Error(t, err)
}
