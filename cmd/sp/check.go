package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/scopepath/compile"
	"github.com/signadot/scopepath/eval"
	"github.com/signadot/scopepath/libdiff"
	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/spath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// Case is one check: either Rel read in Base, or Template rendered against
// Data, must give Want.
type Case struct {
	Name     string `yaml:"name"`
	Base     string `yaml:"base"`
	Rel      string `yaml:"rel"`
	Template string `yaml:"template"`
	Data     any    `yaml:"data"`
	Want     string `yaml:"want"`
}

func (c *Case) label(i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("case %d", i)
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no case files given", cli.ErrUsage)
	}
	colors := cfg.colors(cc.Out)
	total, failed := 0, 0
	for _, file := range args {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		var cases []Case
		if err := yaml.Unmarshal(d, &cases); err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i := range cases {
			c := &cases[i]
			total++
			edits, err := c.run()
			if err != nil {
				failed++
				fmt.Fprintf(cc.Out, "FAIL %s: %s: %v\n", file, c.label(i), err)
				continue
			}
			if libdiff.Changed(edits) {
				failed++
				sep := " "
				if c.Template != "" {
					sep = ""
				}
				fmt.Fprintf(cc.Out, "FAIL %s: %s: %s\n", file, c.label(i), libdiff.Format(edits, sep, colors))
				continue
			}
			if cfg.Verbose {
				fmt.Fprintf(cc.Out, "ok   %s: %s\n", file, c.label(i))
			}
		}
	}
	theLog.Info("check", "total", total, "failed", failed)
	if failed != 0 {
		return fmt.Errorf("%d of %d cases failed", failed, total)
	}
	return nil
}

func (c *Case) run() ([]libdiff.Edit, error) {
	if c.Template != "" {
		return c.runTemplate()
	}
	if c.Rel == "" {
		return nil, fmt.Errorf("case needs rel or template")
	}
	scope := &compile.Scope{}
	if c.Base != "" {
		base, err := parse.Path(c.Base)
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		scope.Push(scope.Resolve(base))
	}
	rel, err := parse.Path(c.Rel)
	if err != nil {
		return nil, fmt.Errorf("rel: %w", err)
	}
	var want spath.Path
	if c.Want != "" {
		want, err = parse.Path(c.Want)
		if err != nil {
			return nil, fmt.Errorf("want: %w", err)
		}
	}
	return libdiff.Paths(want, spath.Resolve(scope.Base(), rel)), nil
}

func (c *Case) runTemplate() ([]libdiff.Edit, error) {
	tmpl, err := parse.Parse([]byte(c.Template))
	if err != nil {
		return nil, err
	}
	prog, err := compile.Compile(tmpl)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := eval.Render(&buf, prog, c.Data); err != nil {
		return nil, err
	}
	return libdiff.Strings(c.Want, buf.String()), nil
}
