package main

import (
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"time"

	karatsuba "github.com/shabbyrobe/go-karatsuba"
	"github.com/urfave/cli/v2"
)

var VerifyCmd = cli.Command{
	Action: doVerify,
	Name:   "verify",
	Usage:  "cross-checks random products against math/big",
	Flags: []cli.Flag{
		&iterationsFlag,
		&digitsFlag,
		&seedFlag,
		&depthFlag,
	},
}

var (
	iterationsFlag = cli.IntFlag{
		Name:    "iterations",
		Usage:   "number of random products to check",
		Value:   1000,
		EnvVars: []string{"KARATSUBA_ITERATIONS"},
	}
	digitsFlag = cli.IntFlag{
		Name:    "digits",
		Usage:   "maximum number of decimal digits in each operand",
		Value:   100,
		EnvVars: []string{"KARATSUBA_DIGITS"},
	}
	seedFlag = cli.Int64Flag{
		Name:    "seed",
		Usage:   "seed for the random operands, 0 uses the current time",
		Value:   0,
		EnvVars: []string{"KARATSUBA_SEED"},
	}
)

func doVerify(ctx *cli.Context) error {
	iterations := ctx.Int(iterationsFlag.Name)
	digits := ctx.Int(digitsFlag.Name)
	depth := ctx.Int(depthFlag.Name)
	if digits < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", digitsFlag.Name, digits)
	}

	seed := ctx.Int64(seedFlag.Name)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Println("rando seed:", seed)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < iterations; i++ {
		x, y := karatsuba.RandDigits(rng, digits), karatsuba.RandDigits(rng, digits)

		got, err := karatsuba.MulConcurrent(ctx.Context, x, y, depth)
		if err != nil {
			return err
		}

		want := new(big.Int).Mul(x.AsBigInt(), y.AsBigInt())
		if got.String() != want.String() {
			return fmt.Errorf("iteration %d: %s * %s = %s, expected %s", i, x, y, got, want)
		}
	}

	fmt.Fprintf(ctx.App.Writer, "verified %d products\n", iterations)
	return nil
}
