// client.go contains the logic for downloading pages from the federation's site,
// everything else in the package works on already fetched documents.

package jsa

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"sumo-scraper/internal/components/assert"
	"sumo-scraper/internal/components/chrono"
	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/pagecache"
	"sumo-scraper/internal/sumo"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	report_client_fetch = "client.fetch"
)

const (
	DefaultBaseUrl   = "https://www.sumo.or.jp"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

	// days of a honbasho
	MaxDay = 15
)

var tracer = otel.Tracer("sumo-scraper/internal/scrapers/jsa")

type ClientOptions struct {
	BaseUrl   string
	UserAgent string
	// RequestDelay is the minimum time between the start of two downloads.
	RequestDelay time.Duration
	// Cache is optional, pages are always downloaded when it is nil.
	Cache *pagecache.Cache
	Clock chrono.API
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	cache *pagecache.Cache
	clock chrono.API
	// one download at a time
	inflight *semaphore.Weighted
	tel      telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel)
	assert.NotNil(opts.Clock)

	tel = telemetry.NewScopedAPI("jsa", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.RequestDelay <= 0 {
		opts.RequestDelay = time.Second
	}

	parsedBaseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	httpClient.SetHeader("user-agent", opts.UserAgent)
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	httpClient.SetTimeout(time.Second * 30)

	// burst of 1 so every download waits out the full delay
	rateLimiter := rate.NewLimiter(rate.Every(opts.RequestDelay), 1)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(httpClient, tel)

	return &Client{
		BaseUrl:  parsedBaseUrl,
		Http:     httpClient,
		cache:    opts.Cache,
		clock:    opts.Clock,
		inflight: semaphore.NewWeighted(1),
		tel:      tel,
	}, nil
}

func banzukeEndpoint(division sumo.Division) string {
	return fmt.Sprintf("/ResultBanzuke/table/?kakuzuke_id=%d", int(division))
}

func torikumiEndpoint(division sumo.Division, day int) string {
	return fmt.Sprintf("/ResultData/torikumi/%d/%d/", int(division), day)
}

// FetchBanzuke downloads the standings table of a division for the current basho.
func (c *Client) FetchBanzuke(ctx context.Context, division sumo.Division) (*goquery.Document, error) {
	if !division.Valid() {
		return nil, fmt.Errorf("fetch banzuke: invalid division %d", int(division))
	}
	return c.fetch(ctx, banzukeEndpoint(division))
}

// FetchTorikumi downloads the bouts of a division on a day of the current basho.
func (c *Client) FetchTorikumi(ctx context.Context, division sumo.Division, day int) (*goquery.Document, error) {
	if !division.Valid() {
		return nil, fmt.Errorf("fetch torikumi: invalid division %d", int(division))
	}
	if day < 1 || day > MaxDay {
		return nil, fmt.Errorf("fetch torikumi: day %d is not between 1 and %d", day, MaxDay)
	}
	return c.fetch(ctx, torikumiEndpoint(division, day))
}

func (c *Client) fetch(ctx context.Context, endpoint string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "fetch")
	defer span.End()

	basho := chrono.Basho(c.clock.Now()).String()
	span.SetAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("basho", basho),
	)

	body, err := c.download(ctx, basho, endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to download page")
		c.tel.ReportBroken(report_client_fetch, err, endpoint)
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse page")
		c.tel.ReportBroken(report_client_fetch, fmt.Errorf("parse: %w", err), endpoint)
		return nil, err
	}
	return doc, nil
}

func (c *Client) download(ctx context.Context, basho, endpoint string) ([]byte, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, basho, endpoint)
		if err == nil {
			c.tel.ReportDebug("page cache hit", endpoint)
			return cached, nil
		}
		if !errors.Is(err, pagecache.ErrPageNotFound) {
			c.tel.ReportWarning(report_client_fetch, fmt.Errorf("read page cache: %w", err), endpoint)
		}
	}

	err := c.inflight.Acquire(ctx, 1)
	if err != nil {
		return nil, err
	}
	res, err := c.Http.R().
		SetContext(ctx).
		Get(endpoint)
	c.inflight.Release(1)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", endpoint, res.Status())
	}

	body := res.Body()
	if c.cache != nil {
		err = c.cache.Set(ctx, basho, endpoint, body)
		if err != nil {
			c.tel.ReportWarning(report_client_fetch, fmt.Errorf("write page cache: %w", err), endpoint)
		}
	}
	return body, nil
}
