// Command lifelog is the command line client of the timeline server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/heartmarshall/lifelog-timeline/internal/app"
	"github.com/heartmarshall/lifelog-timeline/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(cli.DefaultDeps())
	cli.SetVersion(root, app.BuildVersion())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
