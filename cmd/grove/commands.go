package main

import (
	"errors"
	"fmt"
	"os"

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
			Name:        "theme",
			Description: "YAML color theme file",
			Type:        cli.NamedFuncOpt(cfg.themeOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "grove").
		WithSynopsis("grove [opts] command [opts]").
		WithDescription("grove renders and edits structured documents as trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return groveMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			TreeCommand(cfg),
			EditCommand(cfg))
}

func groveMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [sample]").
		WithDescription("render a sample document as styled text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tree").
		WithAliases("t").
		WithSynopsis("tree [sample]").
		WithDescription("print the debug outline of a sample document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("edit").
		WithAliases("e").
		WithSynopsis("edit [-array] <chars>").
		WithDescription("apply insert shortcut chars to an empty document and show the resulting change").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args)
		})
	cfg.Edit = cmd
	return cmd
}
