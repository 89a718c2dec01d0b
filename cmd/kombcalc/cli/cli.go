// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli wires the kombcalc command line: kong flag parsing, YAML
// configuration, logging and profiling setup, and the eval and repl
// commands.
package cli

import (
	"context"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"code.hybscloud.com/komb"
	"code.hybscloud.com/komb/diagview"
	"code.hybscloud.com/komb/example/calc"
	"code.hybscloud.com/komb/text"
)

// CLI is the top-level command line for kombcalc.
type CLI struct {
	Log    logConfig       `embed:"" prefix:"log-" group:"log"`
	Config kong.ConfigFlag `help:"Load flags from a YAML file." placeholder:"PATH"`

	Trace   bool   `help:"Record grammar scope trails on parse errors." short:"t"`
	Plain   bool   `help:"Plain output: no colors, offset-based errors." short:"p"`
	Profile string `help:"Write a profile to the working directory." enum:",cpu,mem" default:""`

	Eval evalCmd `cmd:"" default:"withargs" help:"Evaluate expressions from arguments or stdin."`
	Repl replCmd `cmd:"" help:"Interactive calculator session."`
}

// Run executes the kombcalc CLI with the given context and arguments.
// The exit function is called on usage errors.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name("kombcalc"),
		kong.Description("An arithmetic calculator built on the komb combinator library."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
		kong.Configuration(yamlConfig, ".kombcalc.yaml"),
		kong.ExplicitGroups([]kong.Group{{Key: "log", Title: "Logging options"}}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	cli.Log.start(ctx, cli.Plain)
	defer cli.startProfile()()

	return ktx.Run(ctx, &cli)
}

// parse runs the calculator grammar over src with the configured
// tracing and diagnostics rendering.
func (c *CLI) parse(src string) (*calc.Node, error) {
	var opts []text.Option
	if c.Trace {
		opts = append(opts, text.WithTracing())
	}
	var r komb.Renderer
	if !c.Plain {
		r = diagview.New(src)
	}
	_, n, err := komb.RunWith(calc.Parser(), text.New(src, opts...), komb.NewCounter(), r)
	return n, err
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
