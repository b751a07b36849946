package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	karatsuba "github.com/shabbyrobe/go-karatsuba"
	"github.com/urfave/cli/v2"
)

var MulCmd = cli.Command{
	Action:    doMul,
	Name:      "mul",
	Usage:     "multiplies two non-negative decimal integers",
	ArgsUsage: "<x> <y>",
	Flags: []cli.Flag{
		&depthFlag,
		&verboseFlag,
	},
}

func doMul(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("expected 2 operands, got %d", ctx.NArg())
	}

	x, err := karatsuba.FromString(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	y, err := karatsuba.FromString(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	if ctx.Bool(verboseFlag.Name) {
		fmt.Fprint(ctx.App.ErrWriter, spew.Sdump(x, y))
	}

	result, err := karatsuba.MulConcurrent(ctx.Context, x, y, ctx.Int(depthFlag.Name))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, result)
	return nil
}
