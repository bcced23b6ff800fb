package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/benpop/lua-addrbit/addrbit"
	"github.com/benpop/lua-addrbit/internalerror"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var usages = map[string]string{
	"band":    "value...",
	"bor":     "value...",
	"bxor":    "value...",
	"bnot":    "value",
	"btest":   "value...",
	"lshift":  "value n",
	"rshift":  "value n",
	"arshift": "value n",
	"lrotate": "value n",
	"rrotate": "value n",
	"extract": "value field [width]",
	"replace": "value new field [width]",
}

var commonFlags = []cli.Flag{
	cli.IntFlag{Name: "radix", Usage: "radix of textual values, 0 infers it from the prefix"},
	cli.BoolFlag{Name: "strict", Usage: "reject malformed values instead of reading them as zero"},
	cli.StringFlag{Name: "format", Value: "hex", Usage: "hex, dec or bin"},
}

func formatResult(r addrbit.Result, format string) (string, error) {
	if r.IsBool {
		return r.String(), nil
	}
	switch format {
	case "hex":
		return r.Address.String(), nil
	case "dec":
		return humanize.BigComma(new(big.Int).SetUint64(r.Address.AsU64())), nil
	case "bin":
		return fmt.Sprintf("0b%b", r.Address.AsU64()), nil
	}
	return "", errors.Wrapf(internalerror.InvalidInput, "unknown format %q", format)
}

func runOperation(c *cli.Context) error {
	op := c.Command.Name
	module := addrbit.New()
	module.Radix = c.Int("radix")
	module.Strict = c.Bool("strict")

	args := make([]interface{}, 0, c.NArg())
	for _, arg := range c.Args() {
		args = append(args, arg)
	}
	r, err := module.Call(op, args...)
	if err != nil {
		return err
	}
	out, err := formatResult(r, c.String("format"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, out)
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "addrbit"
	app.Usage = "fixed width bit operations on 64 bit addresses"
	for _, name := range addrbit.Names() {
		app.Commands = append(app.Commands, cli.Command{
			Name:      name,
			Usage:     name + " [flags] [--] " + usages[name],
			ArgsUsage: usages[name],
			Flags:     commonFlags,
			Action:    runOperation,
			//flags stop at the first value so "lshift 16 -4" works,
			//a leading negative value needs "--"
			SkipArgReorder: true,
		})
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
