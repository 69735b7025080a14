package main

import (
	"fmt"

	"github.com/signadot/scopepath/eval"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	data, err := renderData(cfg)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		prog, err := compileFile(file, keywordOpts(cfg.Keywords))
		if err != nil {
			return err
		}
		if err := eval.Render(cc.Out, prog, data); err != nil {
			return err
		}
	}
	return nil
}

// renderData loads the -d data and applies the -e overrides and then the
// -p patch.
func renderData(cfg *RenderConfig) (any, error) {
	var (
		d   []byte
		err error
	)
	if cfg.Data != "" {
		d, err = readInput(cfg.Data)
		if err != nil {
			return nil, err
		}
	}
	if len(cfg.Env) != 0 {
		d, err = eval.MergeOverrides(d, cfg.Env)
		if err != nil {
			return nil, fmt.Errorf("error applying overrides: %w", err)
		}
	}
	if cfg.Patch != "" {
		p, err := readInput(cfg.Patch)
		if err != nil {
			return nil, err
		}
		d, err = eval.ApplyPatch(d, p)
		if err != nil {
			return nil, fmt.Errorf("error applying %s: %w", cfg.Patch, err)
		}
	}
	return eval.LoadData(d)
}
