package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/presentation/tui"
	"github.com/aretw0/automat/internal/validator"
	"github.com/aretw0/automat/pkg/definition"
)

// showCmd renders a machine's transition table and advisory lint.
var showCmd = &cobra.Command{
	Use:   "show <machine.yaml>",
	Short: "Display a machine's states and transition table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, err := definition.ParseFile(args[0])
		if err != nil {
			fatal(err)
		}

		m, err := def.Compile()
		if err != nil {
			fatal(err)
		}

		name := def.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		fmt.Print(tui.RenderMachine(name, m, useColor(cmd)))

		lint := validator.Check(m)
		for _, state := range lint.Unreachable {
			fmt.Fprintf(os.Stderr, "warning: state %q is unreachable from the initial state\n", state)
		}
		for _, state := range lint.Traps {
			fmt.Fprintf(os.Stderr, "warning: state %q is a non-accepting trap\n", state)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
