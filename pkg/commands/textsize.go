package commands

import (
	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/runner/textsize"
)

func addTextSize(topLevel *cobra.Command) {
	t := &textsize.TextSize{}

	cmd := &cobra.Command{
		Use:   "textsize",
		Short: "Show or set the persisted item font size.",
		Example: `
printlist textsize
printlist textsize --set 13
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			t.Persistence = e.p
			t.Default = e.cfg.TextSize()
			return t.Do(cmd.Context())
		},
	}

	cmd.Flags().Float64Var(&t.Set, "set", 0, "Store a new text size in points.")

	topLevel.AddCommand(cmd)
}
