package speech

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// ConsoleSynthesizer "speaks" by printing styled text to a terminal.
type ConsoleSynthesizer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewConsoleSynthesizer writes to w. Pass termenv.WithProfile to force a
// color profile.
func NewConsoleSynthesizer(w io.Writer, opts ...termenv.OutputOption) *ConsoleSynthesizer {
	return &ConsoleSynthesizer{out: termenv.NewOutput(w, opts...)}
}

func (c *ConsoleSynthesizer) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	styled := c.out.String(text).Bold().Foreground(c.out.Color("#a78bfa"))
	if _, err := fmt.Fprintln(c.out, styled); err != nil {
		return fmt.Errorf("writing speech: %w", err)
	}
	return nil
}

// Stop is a no-op: printed speech completes immediately.
func (c *ConsoleSynthesizer) Stop() error {
	return nil
}
