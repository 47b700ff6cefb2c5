package main

import (
	"context"

	"github.com/qrkeeper/qrkeeper/internal/client/cli"
	"github.com/qrkeeper/qrkeeper/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
