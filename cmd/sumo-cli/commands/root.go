package commands

import (
	"context"
	"fmt"
	"os"

	"sumo-scraper/cmd/sumo-cli/globals"
	"sumo-scraper/internal/components/chrono"
	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/pagecache"
	"sumo-scraper/internal/roster"
	"sumo-scraper/internal/scrapers/jsa"
	"sumo-scraper/lib/configutil"

	"github.com/spf13/cobra"
)

var configPath *string
var logLevel *string

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "sumo.json5", "The config file, searched for upwards from the working directory.")
	logLevel = rootCmd.PersistentFlags().String("log-level", "", "Overrides the log level of the config (debug, info, warn, error).")
}

var rootCmd = &cobra.Command{
	Use:   "sumo-cli",
	Short: "sumo-cli scrapes the banzuke and torikumi of the current basho.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configutil.Read[Config](*configPath)
		if err != nil {
			return err
		}
		cfg = cfg.withDefaults()
		if *logLevel != "" {
			cfg.LogLevel = *logLevel
		}

		value, err := setup(cfg)
		if err != nil {
			return err
		}
		cmd.SetContext(globals.Set(cmd.Context(), value))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		globals.Get(cmd.Context()).Rosters.Close()
	},
}

func setup(cfg Config) (*globals.Value, error) {
	tel := telemetry.NewTextSlogAPI(os.Stderr, cfg.LogLevel)

	delay, err := cfg.delay()
	if err != nil {
		return nil, err
	}
	clock, err := chrono.NewStandardImpl()
	if err != nil {
		return nil, err
	}

	var cache *pagecache.Cache
	if cfg.CachePages {
		pages, err := pagecache.New(cfg.pageCacheDir(), cfg.BaseUrl)
		if err != nil {
			return nil, err
		}
		cache = &pages
	}

	client, err := jsa.NewClient(jsa.ClientOptions{
		BaseUrl:      cfg.BaseUrl,
		UserAgent:    cfg.UserAgent,
		RequestDelay: delay,
		Cache:        cache,
		Clock:        clock,
	}, tel)
	if err != nil {
		return nil, err
	}

	rosters := roster.NewCache(roster.NewFileLoader(cfg.DataDir, tel), tel)
	resolver := roster.NewResolver(rosters, tel)

	return &globals.Value{
		DataDir:  cfg.DataDir,
		Tel:      tel,
		Client:   client,
		Rosters:  rosters,
		Resolver: resolver,
		Parser:   jsa.NewParser(resolver, tel),
	}, nil
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
