package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/encode"
)

func runDigest(cfg *DigestConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Digest.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, p := range docArgs(args) {
		doc, err := getDocFile(cc, p, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		sum, err := encode.Digest(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s  %s\n", sum, p)
	}
	return nil
}
