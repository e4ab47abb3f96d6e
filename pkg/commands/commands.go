// Package commands wires the printlist CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/icons"
	"github.com/AtreyuArtax/printlist/pkg/pdf"
	"github.com/AtreyuArtax/printlist/pkg/store"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printlist",
		Short: "Render a checklist as a four-quadrant printable page.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRender(topLevel)
	addPreview(topLevel)
	addWatch(topLevel)
	addSamples(topLevel)
	addLexicon(topLevel)
	addTextSize(topLevel)
	addVersion(topLevel)
}

// env bundles what most commands need.
type env struct {
	cfg store.Config
	p   store.Persistence
	lex icons.Lexicon
}

// loadEnv resolves config, persistence, and the icon lexicon. A
// lexicon that fails to load degrades to the built-in default with a
// notice; only config and persistence failures are fatal.
func loadEnv() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	lex := icons.DefaultLexicon()
	if path := cfg.LexiconPath(); path != "" {
		loaded, err := icons.LoadLexiconOrEmpty(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "note: lexicon %s unavailable, matching without synonyms: %v\n", path, err)
		} else {
			lex = loaded
		}
	}

	return &env{cfg: cfg, p: p, lex: lex}, nil
}

// assets returns the configured icon asset resolver.
func (e *env) assets() icons.Assets {
	return icons.Assets{Base: e.cfg.IconBase(), Ext: e.cfg.IconExt()}
}

// textSize resolves the item font size: explicit flag, then stored
// preference, then config default.
func (e *env) textSize(flag float64) float64 {
	if flag > 0 {
		return flag
	}
	if size, ok := e.p.TextSize(); ok {
		return size
	}
	if e.cfg.TextSize() > 0 {
		return e.cfg.TextSize()
	}
	return pdf.DefaultTextSize
}
