package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/encode"
	"github.com/signadot/go-pandoc/query"
	"github.com/signadot/go-pandoc/stringify"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no query expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, p := range docArgs(args[1:]) {
		doc, err := getDocFile(cc, p, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if cfg.Inlines {
			err = queryInlines(cfg, cc, q, doc)
		} else {
			err = queryBlocks(cfg, cc, q, doc)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func queryBlocks(cfg *QueryConfig, cc *cli.Context, q *query.Query, doc ast.Node) error {
	bs, err := q.Blocks(doc)
	if err != nil {
		return err
	}
	for _, b := range bs {
		if cfg.Text {
			fmt.Fprintln(cc.Out, stringify.Node(*b))
			continue
		}
		d, err := encode.MarshalBlock(*b, cfg.encOpts(cc.Out)...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return nil
}

func queryInlines(cfg *QueryConfig, cc *cli.Context, q *query.Query, doc ast.Node) error {
	is, err := q.Inlines(doc)
	if err != nil {
		return err
	}
	for _, in := range is {
		if cfg.Text {
			fmt.Fprintln(cc.Out, stringify.Inline(*in))
			continue
		}
		d, err := encode.MarshalInline(*in, cfg.encOpts(cc.Out)...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
	}
	return nil
}
