package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "  豊昇龍\n", expected: "豊昇龍"},
		{input: "前頭\n\t三枚目", expected: "前頭 三枚目"},
		{input: "大の里　　関", expected: "大の里 関"},
		{input: "a\u200bb", expected: "ab"},
		{input: "", expected: ""},
	}

	for _, test := range testCases {
		t.Run(test.input, func(t *testing.T) {
			require.Equal(t, test.expected, CleanText(test.input))
		})
	}
}

func TestGetAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<td class="east">
			<a href="/ResultRikishiData/profile/3842/"> 豊昇龍 </a>
			<a href="/ResultRikishiData/photo/">photo</a>
		</td>`))
	require.NoError(t, err)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Equal(t, []Anchor{
		{Name: "豊昇龍", Href: "/ResultRikishiData/profile/3842/"},
		{Name: "photo", Href: "/ResultRikishiData/photo/"},
	}, anchors)

	id, ok := anchors[0].ProfileID()
	require.True(t, ok)
	require.Equal(t, 3842, id)

	_, ok = anchors[1].ProfileID()
	require.False(t, ok)
}
