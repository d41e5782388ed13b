package main

import (
	"context"

	"sumo-scraper/cmd/sumo-cli/commands"
	"sumo-scraper/lib/osutil"
)

func main() {
	ctx, stop := osutil.SignalContext(context.Background())
	defer stop()
	commands.ExecuteContext(ctx)
}
