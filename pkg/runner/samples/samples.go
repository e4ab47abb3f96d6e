// Package samples manages the stored sample lists.
package samples

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/AtreyuArtax/printlist/pkg/store"
)

// Samples lists, shows, or saves sample lists.
type Samples struct {
	Show string
	Save string
	File string

	Persistence store.Persistence
}

func (s *Samples) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("samples: no persistence")
	}

	switch {
	case s.Save != "":
		data, err := os.ReadFile(s.File)
		if err != nil {
			return fmt.Errorf("samples: read %s: %w", s.File, err)
		}
		if err := s.Persistence.SaveSample(s.Save, string(data)); err != nil {
			return err
		}
		fmt.Printf("saved sample %q\n", s.Save)
		return nil

	case s.Show != "":
		text, err := s.Persistence.Sample(s.Show)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil

	default:
		bold := color.New(color.Bold)
		_, _ = bold.Println("Samples")
		for _, name := range s.Persistence.SampleNames() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}
}
