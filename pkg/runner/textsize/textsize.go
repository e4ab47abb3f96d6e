// Package textsize reads and stores the text size preference.
package textsize

import (
	"context"
	"errors"
	"fmt"

	"github.com/AtreyuArtax/printlist/pkg/pdf"
	"github.com/AtreyuArtax/printlist/pkg/store"
)

// TextSize shows or updates the persisted item font size.
type TextSize struct {
	// Set, when positive, stores a new preference.
	Set float64

	Persistence store.Persistence
	Default     float64
}

func (t *TextSize) Do(ctx context.Context) error {
	if t.Persistence == nil {
		return errors.New("textsize: no persistence")
	}

	if t.Set > 0 {
		if err := t.Persistence.SetTextSize(t.Set); err != nil {
			return err
		}
		fmt.Printf("text size set to %gpt\n", t.Set)
		return nil
	}

	if size, ok := t.Persistence.TextSize(); ok {
		fmt.Printf("%gpt (stored preference)\n", size)
		return nil
	}

	def := t.Default
	if def <= 0 {
		def = pdf.DefaultTextSize
	}
	fmt.Printf("%gpt (default)\n", def)
	return nil
}
