package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/encode"
	"github.com/signadot/go-pandoc/patch"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: need a patch and a document, got %d args", cli.ErrUsage, len(args))
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	}
	doc, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var res *ast.Document
	if cfg.Merge {
		res, err = patch.Merge(doc, p)
	} else {
		res, err = patch.Apply(doc, p)
	}
	if err != nil {
		return err
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out)
	return nil
}
