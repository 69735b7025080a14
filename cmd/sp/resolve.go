package main

import (
	"fmt"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/encode"
	"github.com/signadot/scopepath/parse"

	"github.com/scott-cotton/cli"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no paths given", cli.ErrUsage)
	}
	scope := &compile.Scope{}
	if cfg.Base != "" {
		base, err := parse.Path(cfg.Base, parse.Filename("-base"))
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		scope.Push(scope.Resolve(base))
	}
	results := make([]*encode.Result, 0, len(args))
	for _, arg := range args {
		rel, err := parse.Path(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		results = append(results, encode.NewResult(scope.Base(), rel, scope.Resolve(rel)))
	}
	return encode.Results(cc.Out, results, cfg.encOpts(cc.Out)...)
}
