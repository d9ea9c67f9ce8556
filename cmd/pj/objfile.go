package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/parse"
)

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ast.Document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
