package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"voice-calculator/internal/interpreter"
)

func newEvalCmd(opts *options) *cobra.Command {
	var say bool

	cmd := &cobra.Command{
		Use:   "eval <phrase>...",
		Short: "Answer a spoken calculation",
		Example: `  voicecalc eval what is twenty five times four
  voicecalc eval "convert 100 celsius to fahrenheit" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			result := svc.Evaluate(cmd.Context(), strings.Join(args, " "))
			if say {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), interpreter.SpeechText(result))
				return err
			}
			return renderResult(cmd.OutOrStdout(), opts.output, result)
		},
	}

	cmd.Flags().BoolVar(&say, "say", false, "Print the sentence a speech synthesizer would say")
	return cmd
}

func newToolsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "tools <phrase>...",
		Short:   "Run a combinatorics tool (factorial, combination, permutation)",
		Example: `  voicecalc tools 5 choose 2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := interpreter.MathTools(strings.Join(args, " "))
			return renderResult(cmd.OutOrStdout(), opts.output, result)
		},
	}
}
