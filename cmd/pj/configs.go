package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-pandoc/encode"
	"github.com/signadot/go-pandoc/format"
	"github.com/signadot/go-pandoc/parse"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Indent int    `cli:"name=indent desc='indent json output with n spaces'"`
	Debug  string `cli:"name=debug desc='comma separated debug logs: parse,encode,walk,patch,query,all'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format(override *format.Format) format.Format {
	var f format.Format
	if cfg.Y {
		f = format.YAMLFormat
	}
	if override != nil {
		f = *override
	}
	return f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.format(cfg.InFormat))}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format(cfg.OutFormat)),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='patch is a json merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Inlines bool `cli:"name=i aliases=inlines desc='select inlines rather than blocks'"`
	Text    bool `cli:"name=text desc='output the plain text of matches'"`

	Query *cli.Command
}

type MetaConfig struct {
	*MainConfig

	Meta *cli.Command
}

type DigestConfig struct {
	*MainConfig

	Digest *cli.Command
}
