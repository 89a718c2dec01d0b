// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"code.hybscloud.com/komb/example/calc"
)

// evalCmd parses and evaluates expressions: the argument list joined
// into one expression, or one expression per line on stdin.
type evalCmd struct {
	Expr []string `arg:"" optional:"" help:"Expression; tokens are joined with spaces."`
}

// Run executes the eval command.
func (e *evalCmd) Run(ctx context.Context, root *CLI) error {
	if len(e.Expr) > 0 {
		return e.line(ctx, root, strings.Join(e.Expr, " "))
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		if err := e.line(ctx, root, src); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (e *evalCmd) line(ctx context.Context, root *CLI, src string) error {
	n, err := root.parse(src)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "parsed",
		slog.String("ast", n.String()),
	)
	fmt.Println(formatResult(calc.Eval(n)))
	return nil
}
