package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/presentation/tui"
)

//go:embed usage.md
var usageDoc string

// docsCmd renders the embedded usage guide.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the usage guide",
	Run: func(cmd *cobra.Command, args []string) {
		if !useColor(cmd) {
			fmt.Print(usageDoc)
			return
		}

		render := tui.NewRenderer(100)
		out, err := render(usageDoc)
		if err != nil {
			// Fall back to the raw markdown.
			fmt.Print(usageDoc)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
