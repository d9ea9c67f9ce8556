package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/encode"
)

func runView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, p := range docArgs(args) {
		doc, err := getDocFile(cc, p, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}
