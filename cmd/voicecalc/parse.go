package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"voice-calculator/internal/interpreter"
)

type parseOutput struct {
	Tokens      interpreter.MathTokens `json:"tokens" yaml:"tokens"`
	Expression  string                 `json:"expression" yaml:"expression"`
	Explanation string                 `json:"explanation" yaml:"explanation"`
	Valid       bool                   `json:"valid" yaml:"valid"`
	Value       string                 `json:"value,omitempty" yaml:"value,omitempty"`
}

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <phrase>...",
		Short:   "Show the operator and operands read from a phrase",
		Example: `  voicecalc parse five plus three`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			tokens, ok := interpreter.ParseTokens(input)
			if !ok {
				return fmt.Errorf("could not find an operator with two operands in %q", input)
			}

			res := parseOutput{
				Tokens:      tokens,
				Expression:  tokens.Expression(),
				Explanation: tokens.Explain(),
				Valid:       tokens.Validate(),
			}
			if v, ok := tokens.Value(); ok {
				res.Value = interpreter.FormatNumber(v)
			}

			return render(cmd.OutOrStdout(), opts.output, res, func(out *termenv.Output) error {
				muted := out.Color(colorMuted)
				fmt.Fprintf(out, "%s %s\n", out.String("expression:").Foreground(muted), res.Expression)
				fmt.Fprintf(out, "%s %s\n", out.String("spoken:").Foreground(muted), res.Explanation)
				fmt.Fprintf(out, "%s %s\n", out.String("confidence:").Foreground(muted), tokens.Confidence)
				if res.Value != "" {
					fmt.Fprintf(out, "%s %s\n", out.String("value:").Foreground(muted), out.String(res.Value).Bold())
				}
				if !res.Valid {
					_, err := fmt.Fprintln(out, out.String("operands out of range").Foreground(out.Color(colorFailed)))
					return err
				}
				return nil
			})
		},
	}
}
