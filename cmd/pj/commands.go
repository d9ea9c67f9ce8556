package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pj").
		WithSynopsis("pj [opts] command [opts]").
		WithDescription("pj is a tool for working with pandoc JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pjMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			QueryCommand(cfg),
			MetaCommand(cfg),
			DigestCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("check and re-encode documents, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return runView(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("show a line diff of two documents, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-m] [-s] <patch> <file>").
		WithDescription("apply a json patch or json merge patch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [-i] [-text] <expr> [files]").
		WithDescription("print the blocks or inlines matching an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
}

func MetaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MetaConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Meta, "meta").
		WithAliases("m").
		WithSynopsis("meta [path] file").
		WithDescription("print document metadata as yaml, or the value at a dotted path").
		WithRun(func(cc *cli.Context, args []string) error {
			return runMeta(cfg, cc, args)
		})
}

func DigestCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DigestConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Digest, "digest").
		WithSynopsis("digest [files]").
		WithDescription("print the blake3 digest of each document's canonical encoding").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDigest(cfg, cc, args)
		})
}
