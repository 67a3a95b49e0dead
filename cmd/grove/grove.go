package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/grove-editor/grove/ast"
	"github.com/grove-editor/grove/debug"
	"github.com/grove-editor/grove/display"
	"github.com/grove-editor/grove/highlight"
	"github.com/grove-editor/grove/json"
	"github.com/grove-editor/grove/renderdiff"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a := json.NewArena()
	doc, err := sampleDoc(a, sampleArg(args))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	toks := ast.DisplayTokens(doc, cfg.style())
	if debug.Tokens() {
		dumpTokens(toks)
	}
	fmt.Fprintln(cc.Out, renderToks(cfg.MainConfig, cc, toks))
	return nil
}

func renderToks(cfg *MainConfig, cc *cli.Context, toks []display.NodeToken[*json.Node]) string {
	switch {
	case debug.HashColors():
		return highlight.RenderDebug(toks)
	case cfg.useColor(cc.Out):
		return highlight.Render(toks, cfg.scheme())
	default:
		return display.TokensToString(toks)
	}
}

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	a := json.NewArena()
	doc, err := sampleDoc(a, sampleArg(args))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	fmt.Fprintln(cc.Out, ast.TreeView(doc))
	return nil
}

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: edit requires one argument, a string of insert shortcut chars", cli.ErrUsage)
	}

	a := json.NewArena()
	var root *json.Node
	if cfg.Array {
		root = json.Array(a)
	} else {
		root = json.Object(a)
	}
	before := ast.ToText(root, cfg.style())

	for _, c := range args[0] {
		if !ast.IsInsertChar(root, c) {
			return fmt.Errorf("%w: %q is not an insert shortcut for %s", cli.ErrUsage, c, root.DisplayName())
		}
		child, ok := json.NodeFromChar(c, a)
		if !ok {
			return fmt.Errorf("%w: no node shortcut %q", cli.ErrUsage, c)
		}
		if err := root.InsertChild(child, a, len(root.Children())); err != nil {
			// A rejected edit leaves the document intact; report it
			// and keep going, the way an editor surfaces a bad
			// keystroke.
			fmt.Fprintf(os.Stderr, "edit %q rejected: %v\n", c, err)
		}
	}

	after := ast.ToText(root, cfg.style())
	fmt.Fprintln(cc.Out, renderdiff.Render(renderdiff.Diff(before, after)))
	return nil
}

func sampleArg(args []string) string {
	if len(args) == 0 {
		return "config"
	}
	return args[0]
}

func dumpTokens(toks []display.NodeToken[*json.Node]) {
	type tokDump struct {
		Kind string
		Text string `json:",omitempty"`
		Node string
	}
	dump := make([]tokDump, len(toks))
	for i, nt := range toks {
		dump[i] = tokDump{
			Kind: nt.Tok.Kind.String(),
			Text: nt.Tok.Text,
			Node: nt.Node.DisplayName(),
		}
	}
	debug.LogAny(dump)
}
