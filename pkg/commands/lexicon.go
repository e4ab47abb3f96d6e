package commands

import (
	"github.com/spf13/cobra"

	"github.com/AtreyuArtax/printlist/pkg/runner/lexicon"
)

func addLexicon(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Show the icon vocabulary: synonyms and canonical keys.",
		Example: `
printlist lexicon
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			l := lexicon.Legend{Lexicon: e.lex}
			return l.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
