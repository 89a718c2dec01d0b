// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command kombcalc is an arithmetic calculator built on komb. It
// evaluates expressions from arguments or stdin and offers an
// interactive session with styled diagnostics.
package main

import (
	"context"
	"fmt"
	"os"

	"code.hybscloud.com/komb/cmd/kombcalc/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		// Parse failures carry their own styled rendering.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
