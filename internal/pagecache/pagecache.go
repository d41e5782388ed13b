// Package pagecache keeps fetched pages on disk so a tournament's tables are only
// downloaded once.
package pagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/purell"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("sumo-scraper/internal/pagecache")

var ErrPageNotFound = errors.New("page not found in cache")

// Cache stores page bodies as {dir}/{sha256 of key}.html, where the key is a namespace
// (usually the basho id) and the normalized url of the page.
type Cache struct {
	dir     string
	baseUrl *url.URL
}

func New(dir, baseUrl string) (Cache, error) {
	parsed, err := url.Parse(baseUrl)
	if err != nil {
		return Cache{}, fmt.Errorf("page cache: parse base url: %w", err)
	}
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return Cache{}, fmt.Errorf("page cache: %w", err)
	}
	return Cache{dir: dir, baseUrl: parsed}, nil
}

func (c Cache) key(namespace, endpoint string) (string, error) {
	full, err := c.baseUrl.Parse(endpoint)
	if err != nil {
		return "", err
	}
	normalized := purell.NormalizeURL(
		full,
		purell.FlagsSafe|
			purell.FlagsUsuallySafeNonGreedy|
			purell.FlagRemoveDirectoryIndex|
			purell.FlagRemoveFragment|
			purell.FlagSortQuery,
	)
	return namespace + ":" + normalized, nil
}

func (c Cache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".html")
}

func (c Cache) Get(ctx context.Context, namespace, endpoint string) ([]byte, error) {
	_, span := tracer.Start(ctx, "Get")
	defer span.End()

	key, err := c.key(namespace, endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return nil, err
	}
	span.SetAttributes(attribute.String("cache_key", key))

	contents, err := os.ReadFile(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read cached page")
		return nil, err
	}

	span.SetAttributes(attribute.Int("contentlength", len(contents)))
	return contents, nil
}

func (c Cache) Set(ctx context.Context, namespace, endpoint string, contents []byte) error {
	_, span := tracer.Start(ctx, "Set")
	defer span.End()

	key, err := c.key(namespace, endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return err
	}
	span.SetAttributes(attribute.String("cache_key", key))

	// written next to the target and renamed so readers never see half a page
	tmp, err := os.CreateTemp(c.dir, "page-*.tmp")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create temp file")
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(contents)
	if err != nil {
		tmp.Close()
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write page")
		return err
	}
	err = tmp.Close()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write page")
		return err
	}

	err = os.Rename(tmp.Name(), c.path(key))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to move page into place")
		return err
	}
	return nil
}
