package commands

import (
	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/runner/samples"
)

func addSamples(topLevel *cobra.Command) {
	s := &samples.Samples{}

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List, show, or save sample lists.",
		Example: `
printlist samples
printlist samples --show groceries
printlist samples --save mine --file my-list.md
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s.Persistence = e.p
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&s.Show, "show", "", "Print a stored sample.")
	cmd.Flags().StringVar(&s.Save, "save", "", "Save a sample under this name.")
	cmd.Flags().StringVar(&s.File, "file", "", "File to save as a sample.")

	topLevel.AddCommand(cmd)
}
