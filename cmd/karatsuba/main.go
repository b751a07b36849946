package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/karatsuba <command> <flags>

var (
	depthFlag = cli.IntFlag{
		Name:    "depth",
		Usage:   "number of recursion levels to multiply concurrently, 0 to disable",
		Value:   0,
		EnvVars: []string{"KARATSUBA_DEPTH"},
	}
	verboseFlag = cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "dump the parsed operands to stderr",
		EnvVars: []string{"KARATSUBA_VERBOSE"},
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "karatsuba",
		Usage: "arbitrary-precision decimal multiplication",
		Commands: []*cli.Command{
			&MulCmd,
			&DemoCmd,
			&VerifyCmd,
		},
	}
}
