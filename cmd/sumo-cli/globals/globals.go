package globals

import (
	"context"

	"sumo-scraper/internal/components/telemetry"
	"sumo-scraper/internal/roster"
	"sumo-scraper/internal/scrapers/jsa"
)

type key struct{}

// Value is everything a command needs, built once by the root command.
type Value struct {
	DataDir  string
	Tel      telemetry.API
	Client   *jsa.Client
	Rosters  *roster.Cache
	Resolver roster.Resolver
	Parser   jsa.Parser
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}
