// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// recfile checks, formats, converts, and queries RFC 822-style record files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yourbase/recfile/cli"
	"zombiezen.com/go/log"
)

func main() {
	log.SetDefault(cli.Logger{})
	if err := cli.Run(context.Background(), cli.DefaultEnv(), os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cli.Name, err)
		os.Exit(1)
	}
}
