package options

import (
	"github.com/spf13/cobra"
)

// RenderOptions configures PDF export.
type RenderOptions struct {
	Out      string
	TextSize float64
	NoIcons  bool
}

// AddRenderArgs wires export flags on the provided command.
func AddRenderArgs(cmd *cobra.Command, o *RenderOptions) {
	cmd.Flags().StringVarP(&o.Out, "out", "o", "list.pdf",
		"Destination PDF path.")
	cmd.Flags().Float64Var(&o.TextSize, "text-size", 0,
		"Item font size in points (overrides the stored preference).")
	cmd.Flags().BoolVar(&o.NoIcons, "no-icons", false,
		"Render items without icons.")
}

// PreviewOptions configures the terminal preview.
type PreviewOptions struct {
	Flat     bool
	ShowKeys bool
}

// AddPreviewArgs wires preview flags on the provided command.
func AddPreviewArgs(cmd *cobra.Command, o *PreviewOptions) {
	cmd.Flags().BoolVar(&o.Flat, "flat", false,
		"Print a flat listing instead of quadrant boxes.")
	cmd.Flags().BoolVar(&o.ShowKeys, "keys", false,
		"Annotate items with their icon keys (flat mode).")
}
