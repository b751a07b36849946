package main

import (
	"fmt"

	karatsuba "github.com/shabbyrobe/go-karatsuba"
	"github.com/urfave/cli/v2"
)

var DemoCmd = cli.Command{
	Action: doDemo,
	Name:   "demo",
	Usage:  "prints a couple of sample products",
}

var demoProducts = []struct {
	x, y karatsuba.Digits
}{
	{karatsuba.Digits{1, 2, 3, 4}, karatsuba.Digits{5, 6, 7, 8}},
	{karatsuba.Digits{9, 9}, karatsuba.Digits{9, 9}},
}

func doDemo(ctx *cli.Context) error {
	for _, p := range demoProducts {
		fmt.Fprintf(ctx.App.Writer, "%s * %s = %s\n", p.x, p.y, karatsuba.Mul(p.x, p.y))
	}
	return nil
}
