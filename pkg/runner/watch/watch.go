// Package watch re-exports the PDF whenever the input file changes.
package watch

import (
	"context"
	"fmt"
	"os"

	"github.com/AtreyuArtax/printlist/pkg/icons"
	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/runner/render"
	"github.com/AtreyuArtax/printlist/pkg/store"
)

// Watch keeps the exported PDF in sync with a list file. Changes are
// debounced so a burst of editor writes produces one export; a
// failing export is reported and the loop continues.
type Watch struct {
	Input string
	Out   string

	TextSize float64
	Geometry layout.Geometry
	Lexicon  icons.Lexicon
	Assets   icons.Assets
	UseIcons bool
}

func (w *Watch) Do(ctx context.Context) error {
	if err := w.export(ctx); err != nil {
		return err
	}

	changes, err := store.WatchFile(ctx, w.Input, store.DebounceDelay)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	fmt.Printf("watching %s (ctrl-c to stop)\n", w.Input)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := w.export(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "watch: export failed: %v\n", err)
			}
		}
	}
}

func (w *Watch) export(ctx context.Context) error {
	data, err := os.ReadFile(w.Input)
	if err != nil {
		return fmt.Errorf("watch: read %s: %w", w.Input, err)
	}
	r := render.Render{
		Text:     string(data),
		Out:      w.Out,
		TextSize: w.TextSize,
		Geometry: w.Geometry,
		Lexicon:  w.Lexicon,
		Assets:   w.Assets,
		UseIcons: w.UseIcons,
	}
	return r.Do(ctx)
}
