package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/grove-editor/grove/highlight"
	"github.com/grove-editor/grove/json"
)

type MainConfig struct {
	P     bool `cli:"name=p aliases=pretty desc='render in the pretty (multiline) style'"`
	Color bool `cli:"name=color desc='force color output'"`

	Scheme highlight.Scheme

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) style() json.Style {
	if cfg.P {
		return json.Pretty
	}
	return json.Compact
}

func (cfg *MainConfig) scheme() highlight.Scheme {
	if cfg.Scheme != nil {
		return cfg.Scheme
	}
	return highlight.DefaultScheme()
}

// useColor decides whether output to w gets styled: forced by -color,
// otherwise only when w is a terminal.
func (cfg *MainConfig) useColor(w any) bool {
	if cfg.Color {
		return true
	}
	return highlight.Enabled(w)
}

func (cfg *MainConfig) themeOpt(cc *cli.Context, a string) (any, error) {
	f, err := os.Open(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	defer f.Close()
	scheme, err := highlight.LoadTheme(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", cli.ErrUsage, a, err)
	}
	cfg.Scheme = scheme
	return nil, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type EditConfig struct {
	*MainConfig

	Array bool `cli:"name=array desc='edit an array document instead of an object'"`

	Edit *cli.Command
}
