package speech

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// LineRecognizer treats each line of a reader as one utterance. With
// interim results enabled it first emits the growing word prefixes of the
// line, the way a live recognizer revises its guess.
//
// Each session runs its own reader goroutine, which exits when the session
// stops. Lines read but not yet delivered are kept for the next session.
type LineRecognizer struct {
	interim bool
	out     chan Transcript
	lines   chan string

	scanMu  sync.Mutex // held by the active reader; guards scanner and eof
	scanner *bufio.Scanner
	eof     bool

	pendMu  sync.Mutex
	pending []string

	closeLines sync.Once
	closeOut   sync.Once
	readers    sync.WaitGroup

	mu     sync.Mutex
	cancel context.CancelFunc
	quit   chan struct{}
	done   chan struct{}
}

// NewLineRecognizer reads utterances from r.
func NewLineRecognizer(r io.Reader, interim bool) *LineRecognizer {
	return &LineRecognizer{
		interim: interim,
		out:     make(chan Transcript),
		lines:   make(chan string),
		scanner: bufio.NewScanner(r),
	}
}

// Transcripts is closed once the reader is exhausted.
func (l *LineRecognizer) Transcripts() <-chan Transcript {
	return l.out
}

func (l *LineRecognizer) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return ErrAlreadyListening
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.quit = make(chan struct{})
	l.done = make(chan struct{})

	l.readers.Add(1)
	go l.read(l.quit)
	go l.listen(ctx, l.done)
	return nil
}

func (l *LineRecognizer) Stop() error {
	l.mu.Lock()
	cancel, quit, done := l.cancel, l.quit, l.done
	l.cancel, l.quit, l.done = nil, nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return ErrNotListening
	}
	cancel()
	close(quit)
	<-done
	return nil
}

// Reset abandons the current session, if any, so Start can begin a new one.
func (l *LineRecognizer) Reset() {
	_ = l.Stop()
}

// read feeds lines to the current session until quit closes or the input
// ends. A reader still blocked in Scan when quit closes returns once the
// scan completes.
func (l *LineRecognizer) read(quit <-chan struct{}) {
	defer l.readers.Done()

	l.scanMu.Lock()
	defer l.scanMu.Unlock()

	for {
		line, ok := l.popPending()
		if !ok {
			if l.eof {
				return
			}
			if !l.scanner.Scan() {
				l.eof = true
				l.closeLines.Do(func() { close(l.lines) })
				return
			}
			line = l.scanner.Text()
		}

		select {
		case l.lines <- line:
		case <-quit:
			l.pendMu.Lock()
			l.pending = append(l.pending, line)
			l.pendMu.Unlock()
			return
		}
	}
}

func (l *LineRecognizer) popPending() (string, bool) {
	l.pendMu.Lock()
	defer l.pendMu.Unlock()

	if len(l.pending) == 0 {
		return "", false
	}
	line := l.pending[0]
	l.pending = l.pending[1:]
	return line, true
}

// requeue puts back a line the session received but could not deliver.
func (l *LineRecognizer) requeue(line string) {
	l.pendMu.Lock()
	defer l.pendMu.Unlock()

	l.pending = append([]string{line}, l.pending...)
}

func (l *LineRecognizer) listen(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-l.lines:
			if !ok {
				l.closeOut.Do(func() { close(l.out) })
				return
			}
			if !l.emitLine(ctx, strings.TrimSpace(line)) {
				l.requeue(line)
				return
			}
		}
	}
}

func (l *LineRecognizer) emitLine(ctx context.Context, line string) bool {
	if l.interim {
		words := strings.Fields(line)
		for i := 1; i < len(words); i++ {
			if !l.emit(ctx, Transcript{Text: strings.Join(words[:i], " ")}) {
				return false
			}
		}
	}
	return l.emit(ctx, Transcript{Text: line, IsFinal: true})
}

func (l *LineRecognizer) emit(ctx context.Context, t Transcript) bool {
	select {
	case <-ctx.Done():
		return false
	case l.out <- t:
		return true
	}
}
