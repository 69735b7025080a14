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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sp").
		WithSynopsis("sp [opts] command [opts]").
		WithDescription("sp resolves scoped paths and renders the templates that use them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return spMain(cfg, cc, args)
		}).
		WithSubs(
			ResolveCommand(cfg),
			CompileCommand(cfg),
			RenderCommand(cfg),
			CheckCommand(cfg),
			LSPCommand(cfg))
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r", "res").
		WithSynopsis("resolve [-base path] rel...").
		WithDescription(resolveDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return resolve(cfg, cc, args)
		})
}

const resolveDescription = `resolve prints the absolute path each relative path names when read in
the scope given by -base.

Paths starting with ./ or ../ are explicitly relative: each ../ leaves one
scope. Other paths are matched against the end of the base path, and are
absolute when nothing matches. A lone keyword such as @index resolves to
itself.`

func CompileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Compile, "compile").
		WithAliases("c", "co").
		WithSynopsis("compile [-k keywords] [files]").
		WithDescription("print the resolved path of every reference in templates").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compileFiles(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		})
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("re").
		WithSynopsis("render [-d data] [-e path=val [ -e path2=val2 ]...] [-p patch] [files]").
		WithDescription("render templates against data").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [-v] cases.yaml...").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check runs the cases in yaml files and reports those that fail.

A case either resolves a path

  - name: up one scope
    base: a.b
    rel: ../c
    want: a.c

or renders a template

  - name: each
    template: "{{#each xs}}{{./}}{{/each}}"
    data: {xs: [1, 2]}
    want: "12"

Failures are shown as diffs against want. check exits non-zero when any case
fails.`

func LSPCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LSPConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.LSP, "lsp").
		WithSynopsis("lsp [-gops] [-config file]").
		WithDescription("run the template language server on stdin and stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serveLSP(cfg, cc, args)
		})
}
