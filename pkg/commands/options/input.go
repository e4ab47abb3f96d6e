// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/fragment"
	"github.com/AtreyuArtax/printlist/pkg/store"
)

// InputOptions selects where the list text comes from.
type InputOptions struct {
	File     string
	Fragment string
	Sample   string

	// AutoExport is set when a decoded fragment requested an
	// immediate export.
	AutoExport bool
}

// AddInputArgs wires the input source flags on the provided command.
func AddInputArgs(cmd *cobra.Command, o *InputOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		`Read the list from a file ("-" for stdin).`)
	cmd.Flags().StringVar(&o.Fragment, "fragment", "",
		`Read the list from a deep-link fragment ("#list=...&print=1").`)
	cmd.Flags().StringVar(&o.Sample, "sample", "",
		"Use a stored sample list.")
}

// Resolve returns the list text from the first configured source:
// fragment, then sample, then file or stdin.
func (o *InputOptions) Resolve(p store.Persistence) (string, error) {
	if o.Fragment != "" {
		payload, err := fragment.Decode(o.Fragment)
		if err != nil {
			return "", err
		}
		o.AutoExport = payload.AutoExport
		return payload.Text, nil
	}

	if o.Sample != "" {
		if p == nil {
			return "", errors.New("options: no persistence for samples")
		}
		return p.Sample(o.Sample)
	}

	switch o.File {
	case "":
		return "", errors.New("options: no input; use --file, --fragment, or --sample")
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("options: read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(o.File)
		if err != nil {
			return "", fmt.Errorf("options: read %s: %w", o.File, err)
		}
		return string(data), nil
	}
}
