package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat"
	"github.com/aretw0/automat/internal/presentation/tui"
)

// runCmd processes one or more input sequences against a machine file.
var runCmd = &cobra.Command{
	Use:   "run <machine.yaml> [input]...",
	Short: "Run input sequences through a machine",
	Long: `Compiles the given machine definition and processes each input as a
sequence of one-character symbols. With no inputs, sequences are read
from stdin, one per line.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := createLogger(cmd)
		color := useColor(cmd)

		m, err := automat.LoadFile(args[0])
		if err != nil {
			fatal(err)
		}
		logger.Debug("machine compiled",
			"file", args[0],
			"states", len(m.States()),
			"alphabet", len(m.Alphabet()))

		inputs := args[1:]
		if len(inputs) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				inputs = append(inputs, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				fatal(err)
			}
		}

		failed := false
		for _, input := range inputs {
			accepted, err := m.ProcessString(input)
			if err != nil {
				failed = true
				fmt.Fprintf(os.Stderr, "%-16s error: %v\n", input, err)
				continue
			}
			fmt.Println(tui.RenderVerdict(input, accepted, color))
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
