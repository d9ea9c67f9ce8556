package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/encode"
	"github.com/signadot/go-pandoc/meta"
)

func runMeta(cfg *MetaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Meta.Parse(cc, args)
	if err != nil {
		return err
	}
	var path string
	switch len(args) {
	case 0:
		args = []string{"-"}
	case 1:
	case 2:
		path, args = args[0], args[1:]
	default:
		return fmt.Errorf("%w: too many args", cli.ErrUsage)
	}
	doc, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if path == "" {
		d, err := meta.ToYAML(doc.Meta)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	v, ok := meta.Lookup(doc.Meta, path)
	if !ok {
		return fmt.Errorf("%w: %q not found", meta.ErrMeta, path)
	}
	d, err := encode.MarshalMetaValue(v, cfg.encOpts(cc.Out)...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", d)
	return nil
}
