package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"sumo-scraper/internal/scrapers/jsa"
	"sumo-scraper/internal/sumo"
)

type Config struct {
	DataDir      string `json:"data_dir" env:"SUMO_DATA_DIR"`
	BaseUrl      string `json:"base_url" env:"SUMO_BASE_URL"`
	RequestDelay string `json:"request_delay" env:"SUMO_REQUEST_DELAY"`
	UserAgent    string `json:"user_agent" env:"SUMO_USER_AGENT"`
	CachePages   bool   `json:"cache_pages" env:"SUMO_CACHE_PAGES"`
	LogLevel     string `json:"log_level" env:"SUMO_LOG_LEVEL"`
}

func (c Config) withDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.BaseUrl == "" {
		c.BaseUrl = jsa.DefaultBaseUrl
	}
	if c.RequestDelay == "" {
		c.RequestDelay = "1s"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}

func (c Config) delay() (time.Duration, error) {
	delay, err := time.ParseDuration(c.RequestDelay)
	if err != nil {
		return 0, fmt.Errorf("request_delay: %w", err)
	}
	if delay <= 0 {
		return 0, fmt.Errorf("request_delay must be positive, got %s", c.RequestDelay)
	}
	return delay, nil
}

func (c Config) pageCacheDir() string {
	return filepath.Join(c.DataDir, "pages")
}

// parseDivisions reads a --division flag, empty means every division.
func parseDivisions(flag string) ([]sumo.Division, error) {
	if strings.TrimSpace(flag) == "" {
		return sumo.Divisions, nil
	}
	var out []sumo.Division
	for _, part := range strings.Split(flag, ",") {
		division, err := sumo.ParseDivision(part)
		if err != nil {
			return nil, err
		}
		out = append(out, division)
	}
	return out, nil
}

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatList  outputFormat = "list"
	formatJSON  outputFormat = "json"
	formatCSV   outputFormat = "csv"
)

func parseFormat(flag string, allowed ...outputFormat) (outputFormat, error) {
	format := outputFormat(strings.ToLower(strings.TrimSpace(flag)))
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, expected one of %v", flag, allowed)
}
