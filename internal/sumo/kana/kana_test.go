package kana

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToRomaji(t *testing.T) {
	testCases := []struct {
		reading  string
		expected string
	}{
		{reading: "ほうしょうりゅう", expected: "hoshoryu"},
		{reading: "てるのふじ", expected: "terunofuji"},
		{reading: "ことざくら", expected: "kotozakura"},
		{reading: "おおのさと", expected: "onosato"},
		{reading: "きりしま", expected: "kirishima"},
		{reading: "だいえいしょう", expected: "daieisho"},
		{reading: "わかもとはる", expected: "wakamotoharu"},
		{reading: "とびざる", expected: "tobizaru"},
		{reading: "しし", expected: "shishi"},
		{reading: "あび", expected: "abi"},
		{reading: "きんぼうざん", expected: "kinbozan"},
		{reading: "ほっかいふじ", expected: "hokkaifuji"},
		{reading: "まっちゃ", expected: "matcha"},
		{reading: "ちゅうおう", expected: "chuo"},
		{reading: "キリシマ", expected: "kirishima"},
		{reading: "じょう", expected: "jo"},
		{reading: "", expected: ""},
		{reading: "abc", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ToRomaji(test.reading), test.reading)
	}
}

func TestEnglishName(t *testing.T) {
	require.Equal(t, "Hoshoryu", EnglishName("hoshoryu"))
	require.Equal(t, "", EnglishName("  "))
}
