package jsa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sumo-scraper/internal/components/chrono"
	"sumo-scraper/internal/pagecache"
	"sumo-scraper/internal/sumo"

	"github.com/stretchr/testify/require"
)

type fakeSite struct {
	hits  atomic.Int64
	paths chan string
}

func (s *fakeSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	select {
	case s.paths <- r.URL.RequestURI():
	default:
	}
	if r.URL.Path == "/ResultData/torikumi/6/15/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.Write([]byte(banzukeFixture))
}

func newTestClient(t *testing.T, cache *pagecache.Cache) (*Client, *fakeSite) {
	site := &fakeSite{paths: make(chan string, 16)}
	server := httptest.NewServer(site)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{
		BaseUrl:      server.URL,
		RequestDelay: time.Millisecond,
		Cache:        cache,
		Clock:        chrono.FixedImpl{Time: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)},
	}, newRecorder())
	require.NoError(t, err)
	return client, site
}

func TestFetchBanzuke(t *testing.T) {
	client, site := newTestClient(t, nil)

	doc, err := client.FetchBanzuke(context.Background(), sumo.Makuuchi)
	require.NoError(t, err)
	require.Equal(t, "/ResultBanzuke/table/?kakuzuke_id=1", <-site.paths)
	require.Len(t, ParseBanzuke(context.Background(), doc, sumo.Makuuchi), 5)

	_, err = client.FetchBanzuke(context.Background(), sumo.DivisionUnknown)
	require.Error(t, err)
}

func TestFetchTorikumi(t *testing.T) {
	client, site := newTestClient(t, nil)

	_, err := client.FetchTorikumi(context.Background(), sumo.Juryo, 3)
	require.NoError(t, err)
	require.Equal(t, "/ResultData/torikumi/2/3/", <-site.paths)

	_, err = client.FetchTorikumi(context.Background(), sumo.Jonokuchi, 15)
	require.ErrorContains(t, err, "404")

	for _, day := range []int{0, 16} {
		_, err = client.FetchTorikumi(context.Background(), sumo.Juryo, day)
		require.Error(t, err)
	}
	require.Equal(t, int64(2), site.hits.Load())
}

func TestFetchUsesPageCache(t *testing.T) {
	dir := t.TempDir()
	cache, err := pagecache.New(dir, "http://unused.invalid")
	require.NoError(t, err)

	client, site := newTestClient(t, &cache)

	for range 3 {
		_, err := client.FetchBanzuke(context.Background(), sumo.Makuuchi)
		require.NoError(t, err)
	}
	require.Equal(t, int64(1), site.hits.Load())

	// the basho of the fixed clock is 2025-05
	cached, err := cache.Get(context.Background(), "202505", banzukeEndpoint(sumo.Makuuchi))
	require.NoError(t, err)
	require.Equal(t, banzukeFixture, string(cached))

	// failed downloads are not cached
	_, err = client.FetchTorikumi(context.Background(), sumo.Jonokuchi, 15)
	require.Error(t, err)
	_, err = client.FetchTorikumi(context.Background(), sumo.Jonokuchi, 15)
	require.Error(t, err)
	require.Equal(t, int64(3), site.hits.Load())
}
