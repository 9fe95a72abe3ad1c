// Package speech defines the speech capabilities a calculator front end
// consumes and an assistant loop that ties them to the interpreter.
package speech

import (
	"context"
	"errors"
)

var (
	// ErrAlreadyListening is returned by Start while a session is active.
	ErrAlreadyListening = errors.New("speech: recognizer already listening")
	// ErrNotListening is returned by Stop when no session is active.
	ErrNotListening = errors.New("speech: recognizer not listening")
)

// Transcript is one recognition event. Interim transcripts may be revised;
// only final ones are acted on.
type Transcript struct {
	Text    string
	IsFinal bool
}

// Recognizer turns speech into transcripts. At most one session is active
// at a time.
type Recognizer interface {
	Start(ctx context.Context) error
	Stop() error
	Reset()
	Transcripts() <-chan Transcript
}

// Synthesizer speaks text. Speak may be interrupted by Stop.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
	Stop() error
}
