// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package rfc822_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yourbase/recfile/rfc822"
)

func ExampleReader() {
	const jobs = `
id: hello
command: echo hello

# Disabled for now.
id: goodbye
description:
 Says goodbye.
 .
 Then exits.
`
	ctx := context.Background()
	r := rfc822.NewReader(strings.NewReader(jobs), nil)
	for {
		rec, err := r.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			// handle error
			return
		}
		fmt.Printf("%v: %s\n", rec.Origin(), rec.Get("id"))
	}

	// Output:
	// ???:2-3: hello
	// ???:6-10: goodbye
}

func ExampleParseString_error() {
	_, err := rfc822.ParseString(context.Background(), "id: a\nid: b\n", &rfc822.ParseOptions{
		Filename: "jobs.txt",
	})
	var syntaxErr *rfc822.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Println(syntaxErr)
	}

	// Output:
	// jobs.txt:2: duplicate key "id" with old value "a" and new value "b"
}

func ExampleWriter() {
	w := rfc822.NewWriter(os.Stdout)
	w.WriteField("id", "hello")
	w.WriteField("description", "First paragraph.\n\nSecond paragraph.")
	w.WriteList("depends", []string{"setup", "network"})
	w.EndRecord()

	// Output:
	// id: hello
	// description:
	//  First paragraph.
	//  .
	//  Second paragraph.
	// depends:
	//  setup
	//  network
}
