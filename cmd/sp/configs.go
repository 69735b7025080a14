package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/encode"
	"github.com/signadot/scopepath/format"
	"github.com/signadot/scopepath/parse"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Depth bool `cli:"name=depth desc='show the depth tags of resolved paths'"`

	OutFormat *format.Format

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

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Depths(cfg.Depth),
	}
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// colors returns the colors to write to w with, or nil for none. -color
// forces colors; without it they are used on terminals.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		color.NoColor = false
		return encode.NewColors()
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
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type ResolveConfig struct {
	*MainConfig
	Base string `cli:"name=base desc='path of the enclosing scope'"`

	Resolve *cli.Command
}

type CompileConfig struct {
	*MainConfig
	Keywords string `cli:"name=k aliases=keywords desc='comma separated allowed keywords'"`

	Compile *cli.Command
}

// keywordOpts turns a -k flag into compile options.
func keywordOpts(kws string) []compile.CompileOption {
	if kws == "" {
		return nil
	}
	return []compile.CompileOption{compile.Keywords(strings.Split(kws, ",")...)}
}

type RenderConfig struct {
	*MainConfig
	Env      map[string]any
	Data     string `cli:"name=d aliases=data desc='data file, yaml or json'"`
	Patch    string `cli:"name=p aliases=patch desc='json patch file applied to the data'"`
	Keywords string `cli:"name=k aliases=keywords desc='comma separated allowed keywords'"`

	Render *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Verbose bool `cli:"name=v desc='report passing cases too'"`

	Check *cli.Command
}

type LSPConfig struct {
	*MainConfig
	Gops       bool   `cli:"name=gops desc='start a gops agent'"`
	ConfigFile string `cli:"name=config desc='language server config file'"`

	LSP *cli.Command
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc records a path=val override. val is read as YAML.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	if _, err := parse.Path(key); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	env[key] = v
	return nil
}
