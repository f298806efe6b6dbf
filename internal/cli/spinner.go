package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/sankeyflow/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	spinnerInterval = 80 * time.Millisecond

	// Runs shorter than this show no elapsed time.
	showElapsedAfter = time.Second
)

// Spinner animates a status line while the pipeline runs. Installed with
// follow, it also receives pipeline events and names the current stage.
type Spinner struct {
	observability.PipelineHooks

	out      io.Writer
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopped  chan struct{}
	started  time.Time
	running  bool
	stopOnce sync.Once

	mu      sync.Mutex
	message string
	width   int // widest line drawn so far, cleared on stop
}

// newSpinner creates a spinner that stops when ctx is cancelled.
func newSpinner(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		PipelineHooks: observability.NoopPipelineHooks{},
		out:           os.Stderr,
		message:       message,
		ctx:           spinnerCtx,
		cancel:        cancel,
		done:          make(chan struct{}),
		stopped:       make(chan struct{}),
	}
}

// SetOutput redirects the animation, e.g. to io.Discard in tests.
func (s *Spinner) SetOutput(w io.Writer) { s.out = w }

// SetMessage replaces the text shown next to the frame.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Message returns the current text.
func (s *Spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.started = time.Now()
	s.running = true
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.message
	if elapsed := time.Since(s.started); elapsed >= showElapsedAfter {
		text += fmt.Sprintf(" %.1fs", elapsed.Seconds())
	}
	s.width = max(s.width, len([]rune(text))+2)
	fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(text))
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		close(s.done)
		if s.running {
			<-s.stopped
		}
		s.clearLine()
	})
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width == 0 {
		return
	}
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context was cancelled from
// outside.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// =============================================================================
// Pipeline Stages
// =============================================================================

// follow routes pipeline events through the spinner, chained in front of
// the hooks already registered. The returned func restores them.
func (s *Spinner) follow() (restore func()) {
	prev := observability.Pipeline()
	s.PipelineHooks = prev
	observability.SetPipelineHooks(s)
	return func() { observability.SetPipelineHooks(prev) }
}

func (s *Spinner) OnLoadStart(ctx context.Context, source string) {
	s.SetMessage("Loading " + source + "...")
	s.PipelineHooks.OnLoadStart(ctx, source)
}

func (s *Spinner) OnLayoutStart(ctx context.Context, nodeCount int) {
	s.SetMessage(fmt.Sprintf("Laying out %d nodes...", nodeCount))
	s.PipelineHooks.OnLayoutStart(ctx, nodeCount)
}

func (s *Spinner) OnRenderStart(ctx context.Context, formats []string) {
	s.SetMessage("Rendering " + strings.Join(formats, ", ") + "...")
	s.PipelineHooks.OnRenderStart(ctx, formats)
}
