package main

import (
	"context"

	"github.com/blogd-io/blogd/internal/client/cli"
	"github.com/blogd-io/blogd/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
