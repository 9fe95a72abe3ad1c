package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"voice-calculator/internal/interpreter"
	"voice-calculator/internal/session"
	"voice-calculator/internal/speech"
)

type heard struct {
	input  string
	result interpreter.Result
}

func newListenCmd(opts *options) *cobra.Command {
	var (
		interim     bool
		historySize int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Answer calculations read line by line from stdin",
		Long: `listen treats every line on stdin as one utterance, answers it and
"speaks" the answer back to the terminal. With -o json or -o yaml each
result is also written as a document. Stops at end of input or on Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			// Structured output owns stdout; spoken replies move to stderr.
			spoken := out
			if opts.output != formatText {
				spoken = cmd.ErrOrStderr()
			}

			rec := speech.NewLineRecognizer(cmd.InOrStdin(), interim)
			syn := speech.NewConsoleSynthesizer(spoken)
			assistant := speech.NewAssistant(rec, syn, speech.EvaluatorFunc(svc.Evaluate), session.NewHistory(historySize), opts.logger)

			g, gctx := errgroup.WithContext(ctx)

			results := make(chan heard)
			if opts.output != formatText {
				assistant.OnResult = func(input string, result interpreter.Result) {
					select {
					case results <- heard{input: input, result: result}:
					case <-gctx.Done():
					}
				}
			}

			g.Go(func() error {
				defer close(results)
				return assistant.Run(gctx)
			})
			g.Go(func() error {
				for h := range results {
					if err := renderResult(out, opts.output, h.result); err != nil {
						return err
					}
				}
				return nil
			})
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			if showHistory {
				return renderHistory(out, opts.output, assistant.History().Entries())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&interim, "interim", false, "Emit interim transcripts word by word before each final one")
	cmd.Flags().IntVar(&historySize, "history-size", session.DefaultHistorySize, "Number of answers remembered")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Print the remembered answers on exit")
	return cmd
}
