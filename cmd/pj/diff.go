package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/diff"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: need 2 documents to diff, got %d", cli.ErrUsage, len(args))
	}
	a, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	b, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	d, err := diff.Documents(a, b)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
