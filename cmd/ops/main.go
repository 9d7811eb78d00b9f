package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

// main is the operator CLI. It shares config and storage with cmd/api.
func main() {
	app := &cli.App{
		Name:  "ops",
		Usage: "Maintenance commands for the rental marketplace",
		Commands: []*cli.Command{
			migrateCmd,
			auditCmd,
			rematchCmd,
			tailCmd,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}
