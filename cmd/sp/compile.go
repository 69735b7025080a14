package main

import (
	"errors"
	"fmt"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/encode"
	"github.com/signadot/scopepath/parse"

	"github.com/scott-cotton/cli"
)

func compileFiles(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		return err
	}
	var (
		results []*encode.Result
		errs    []error
	)
	for _, file := range inputs(args) {
		prog, err := compileFile(file, keywordOpts(cfg.Keywords))
		if prog == nil {
			return err
		}
		if err != nil {
			errs = append(errs, err)
		}
		for _, r := range prog.Refs {
			res := encode.NewResult(r.Base, r.Rel, r.Path)
			line, col := r.Pos.LineCol()
			res.Pos = fmt.Sprintf("%s:%d:%d", file, line+1, col+1)
			results = append(results, res)
		}
	}
	if err := encode.Results(cc.Out, results, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// compileFile parses and compiles a template file. The program is nil only
// when the file could not be read or parsed.
func compileFile(file string, opts []compile.CompileOption) (*compile.Program, error) {
	d, err := readInput(file)
	if err != nil {
		return nil, err
	}
	tmpl, err := parse.Parse(d, parse.Filename(file))
	if err != nil {
		return nil, err
	}
	return compile.Compile(tmpl, opts...)
}
