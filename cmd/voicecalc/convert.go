package main

import (
	"fmt"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"voice-calculator/internal/units"
)

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <value> <from> <to>",
		Short:   "Convert a value between units",
		Example: `  voicecalc convert 5 km miles`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing value %q: %w", args[0], err)
			}

			spec := units.Spec{
				Value:  value,
				Source: units.Resolve(args[1]),
				Target: units.Resolve(args[2]),
			}
			conv, ok := units.Convert(spec)
			if !ok {
				return fmt.Errorf("no conversion from %s to %s", spec.Source, spec.Target)
			}

			return render(cmd.OutOrStdout(), opts.output, conv, func(out *termenv.Output) error {
				result := out.String(conv.Result).Bold().Foreground(out.Color(colorValue))
				formula := out.String(conv.Formula).Foreground(out.Color(colorMuted))
				_, err := fmt.Fprintf(out, "%s\n%s\n", result, formula)
				return err
			})
		},
	}
}

type unitCategory struct {
	Name  string   `json:"name" yaml:"name"`
	Units []string `json:"units" yaml:"units"`
}

func newUnitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List supported units by category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := units.Categories()
			if len(args) == 1 {
				if units.Units(args[0]) == nil {
					return fmt.Errorf("unknown category %q", args[0])
				}
				names = args[:1]
			}

			categories := make([]unitCategory, 0, len(names))
			for _, name := range names {
				categories = append(categories, unitCategory{Name: name, Units: units.Units(name)})
			}

			return render(cmd.OutOrStdout(), opts.output, categories, func(out *termenv.Output) error {
				for _, c := range categories {
					if _, err := fmt.Fprintf(out, "%s\n", out.String(c.Name).Bold()); err != nil {
						return err
					}
					for _, u := range c.Units {
						if _, err := fmt.Fprintf(out, "  - %s\n", u); err != nil {
							return err
						}
					}
				}
				return nil
			})
		},
	}
}
