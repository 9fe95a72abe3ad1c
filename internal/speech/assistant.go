package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"voice-calculator/internal/interpreter"
	"voice-calculator/internal/session"
)

const (
	noInputReply      = "I didn't catch that. Could you please repeat your calculation?"
	unrecognizedReply = "Sorry, I couldn't calculate that. Please try again."
)

// Evaluator computes the answer to one utterance.
type Evaluator interface {
	Evaluate(ctx context.Context, input string) interpreter.Result
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(ctx context.Context, input string) interpreter.Result

func (f EvaluatorFunc) Evaluate(ctx context.Context, input string) interpreter.Result {
	return f(ctx, input)
}

// Assistant listens for final transcripts, answers them and speaks the
// answer back.
type Assistant struct {
	recognizer  Recognizer
	synthesizer Synthesizer
	evaluator   Evaluator
	history     *session.History
	logger      *zap.Logger

	// OnResult, when set, observes every evaluated utterance.
	OnResult func(input string, result interpreter.Result)
}

func NewAssistant(rec Recognizer, syn Synthesizer, eval Evaluator, history *session.History, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	if history == nil {
		history = session.NewHistory(session.DefaultHistorySize)
	}
	return &Assistant{
		recognizer:  rec,
		synthesizer: syn,
		evaluator:   eval,
		history:     history,
		logger:      logger,
	}
}

// History returns the assistant's calculation history.
func (a *Assistant) History() *session.History {
	return a.history
}

// Run listens until ctx is done or the recognizer runs out of input.
func (a *Assistant) Run(ctx context.Context) error {
	if err := a.recognizer.Start(ctx); err != nil {
		return fmt.Errorf("starting recognizer: %w", err)
	}
	defer func() {
		if err := a.recognizer.Stop(); err != nil && !errors.Is(err, ErrNotListening) {
			a.logger.Warn("stopping recognizer", zap.Error(err))
		}
	}()

	transcripts := a.recognizer.Transcripts()
	for {
		select {
		case <-ctx.Done():
			return nil
		case t, ok := <-transcripts:
			if !ok {
				return nil
			}
			if !t.IsFinal {
				continue
			}
			a.respond(ctx, t.Text)
		}
	}
}

func (a *Assistant) respond(ctx context.Context, text string) {
	input := strings.TrimSpace(text)
	if input == "" {
		a.say(ctx, noInputReply)
		return
	}

	result := a.evaluator.Evaluate(ctx, input)
	a.history.Add(session.NewEntry(input, result))
	if a.OnResult != nil {
		a.OnResult(input, result)
	}

	a.logger.Info("utterance evaluated",
		zap.String("input", input),
		zap.String("value", result.Value),
		zap.String("tool", result.Tool),
	)

	if result.Unrecognized() {
		a.say(ctx, unrecognizedReply)
		return
	}
	a.say(ctx, interpreter.SpeechText(result))
}

// say interrupts any speech in progress and speaks text. Failures are only
// logged.
func (a *Assistant) say(ctx context.Context, text string) {
	if err := a.synthesizer.Stop(); err != nil {
		a.logger.Debug("stopping speech", zap.Error(err))
	}
	if err := a.synthesizer.Speak(ctx, text); err != nil {
		a.logger.Debug("speaking", zap.Error(err))
	}
}
