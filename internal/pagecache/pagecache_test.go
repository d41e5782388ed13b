package pagecache

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cache, err := New(dir, "https://www.sumo.or.jp")
	require.NoError(t, err)

	_, err = cache.Get(ctx, "202505", "/ResultBanzuke/table/?kakuzuke_id=1")
	require.ErrorIs(t, err, ErrPageNotFound)

	page := []byte("<table>豊昇龍</table>")
	err = cache.Set(ctx, "202505", "/ResultBanzuke/table/?kakuzuke_id=1&page=1", page)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		namespace string
		endpoint  string
		hit       bool
	}{
		{name: "same url", namespace: "202505", endpoint: "/ResultBanzuke/table/?kakuzuke_id=1&page=1", hit: true},
		{name: "query order", namespace: "202505", endpoint: "/ResultBanzuke/table/?page=1&kakuzuke_id=1", hit: true},
		{name: "absolute with fragment", namespace: "202505", endpoint: "https://www.sumo.or.jp/ResultBanzuke/table/?kakuzuke_id=1&page=1#top", hit: true},
		{name: "other basho", namespace: "202503", endpoint: "/ResultBanzuke/table/?kakuzuke_id=1&page=1"},
		{name: "other division", namespace: "202505", endpoint: "/ResultBanzuke/table/?kakuzuke_id=2&page=1"},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			contents, err := cache.Get(ctx, test.namespace, test.endpoint)
			if !test.hit {
				require.ErrorIs(t, err, ErrPageNotFound)
				return
			}
			require.NoError(t, err)
			require.Equal(t, page, contents)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
