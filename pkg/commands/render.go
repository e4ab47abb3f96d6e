package commands

import (
	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/commands/options"
	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/runner/render"
)

func addRender(topLevel *cobra.Command) {
	io := &options.InputOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the list as a single-page PDF.",
		Example: `
printlist render -f groceries.md -o groceries.pdf
cat list.md | printlist render -f -
printlist render --sample groceries
printlist render --fragment '#list=%23%20Trip%0A-%20%5B%20%5D%20Tent'
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

			r := render.Render{
				Text:     text,
				Out:      ro.Out,
				TextSize: e.textSize(ro.TextSize),
				Geometry: layout.Letter(),
				Lexicon:  e.lex,
				Assets:   e.assets(),
				UseIcons: !ro.NoIcons && e.cfg.IconBase() != "",
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddInputArgs(cmd, io)
	options.AddRenderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
