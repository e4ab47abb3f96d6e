package commands

import (
	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/commands/options"
	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/runner/preview"
	"github.com/AtreyuArtax/printlist/pkg/runner/render"
)

func addPreview(topLevel *cobra.Command) {
	io := &options.InputOptions{}
	po := &options.PreviewOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show how the list packs into quadrants, in the terminal.",
		Example: `
printlist preview -f groceries.md
printlist preview --sample camping --flat --keys
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			text, err := io.Resolve(e.p)
			if err != nil {
				return err
			}

			p := preview.Preview{
				Text:     text,
				Flat:     po.Flat,
				ShowKeys: po.ShowKeys,
				Lexicon:  e.lex,
			}
			if err := p.Do(cmd.Context()); err != nil {
				return err
			}

			// A deep link may ask for an immediate export as well.
			if io.AutoExport {
				r := render.Render{
					Text:     text,
					Out:      ro.Out,
					TextSize: e.textSize(ro.TextSize),
					Geometry: layout.Letter(),
					Lexicon:  e.lex,
					Assets:   e.assets(),
					UseIcons: e.cfg.IconBase() != "",
				}
				return r.Do(cmd.Context())
			}
			return nil
		},
	}

	options.AddInputArgs(cmd, io)
	options.AddPreviewArgs(cmd, po)
	options.AddRenderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
