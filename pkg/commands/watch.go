package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/commands/options"
	"github.com/AtreyuArtax/printlist/pkg/layout"
	"github.com/AtreyuArtax/printlist/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	ro := &options.RenderOptions{}
	var file string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-export the PDF whenever the list file changes.",
		Example: `
printlist watch groceries.md -o groceries.pdf
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("watch requires exactly one file argument")
			}
			file = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			w := watch.Watch{
				Input:    file,
				Out:      ro.Out,
				TextSize: e.textSize(ro.TextSize),
				Geometry: layout.Letter(),
				Lexicon:  e.lex,
				Assets:   e.assets(),
				UseIcons: !ro.NoIcons && e.cfg.IconBase() != "",
			}
			return w.Do(cmd.Context())
		},
	}

	options.AddRenderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
