// Package launcher starts a viewer server for a browser session, reports
// where to find it, and idles until interrupted.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sonnes/liveview/console"
	"github.com/sonnes/liveview/errext"
)

// DefaultPort is the port the viewer listens on when none is given.
const DefaultPort = 8000

const (
	bannerTitle = "Browser Live Viewer"
	urlHeading  = "Viewer URL"
)

var bannerBody = []string{
	"Bedrock-AgentCore Browser Live Viewer",
	"",
	"This demonstrates:",
	"• Live browser viewing with DCV",
	"• Configurable display sizes (not limited to 900×800)",
	"• Proper display layout callbacks",
	"",
	"Note: Requires Amazon DCV SDK files",
}

// Features are printed after the viewer is up.
var Features = []string{
	"Default display: 1600×900 (configured via displayLayout callback)",
	"Size options: 720p, 900p, 1080p, 1440p",
	"Real-time display updates",
}

// Server is a viewer server that can be started for a session.
type Server interface {
	// Start serves the viewer for sessionID and returns its URL. When
	// openBrowser is set the URL is also opened locally.
	Start(ctx context.Context, sessionID string, openBrowser bool) (string, error)
}

// Factory builds a Server bound to port.
type Factory func(port int) (Server, error)

// Options are the values the launcher runs with. They do not change once
// Run is called.
type Options struct {
	SessionID string
	Port      int
}

// Launcher runs the viewer until interrupted.
type Launcher struct {
	Printer   *console.Printer
	NewServer Factory

	// PollInterval is how often the idle loop wakes up. Zero means one second.
	PollInterval time.Duration

	state atomic.Int32
}

// State returns the current lifecycle state.
func (l *Launcher) State() State {
	return State(l.state.Load())
}

func (l *Launcher) setState(s State) {
	old := State(l.state.Swap(int32(s)))
	log.Debug("launcher state", "from", old, "to", s)
}

// Run starts the viewer and blocks until ctx is cancelled. Cancellation is
// the normal way to stop and returns nil. Any failure, including a panic in
// the server, is printed with its stack trace and returned with an exit code
// attached; it is never re-panicked.
func (l *Launcher) Run(ctx context.Context, opts Options) error {
	err := l.run(ctx, opts)
	if err == nil || errext.IsInterruptError(err) {
		l.setState(ShuttingDown)
		l.Printer.Shutdown()
		l.setState(Terminated)
		return nil
	}

	l.setState(Failed)
	l.Printer.Error(err)
	l.setState(Terminated)
	return err
}

func (l *Launcher) run(ctx context.Context, opts Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errext.StartupFailure(fmt.Errorf("panic: %v", r), debug.Stack())
		}
	}()

	l.setState(Starting)
	l.Printer.Banner(bannerTitle, bannerBody...)
	l.Printer.Info("Using browser session: %s", opts.SessionID)
	l.Printer.Info("Starting viewer server on port %d...", opts.Port)

	srv, err := l.NewServer(opts.Port)
	if err != nil {
		return errext.StartupFailure(fmt.Errorf("create viewer server: %w", err), debug.Stack())
	}

	url, err := srv.Start(ctx, opts.SessionID, false)
	if err != nil {
		err = errext.StartupFailure(fmt.Errorf("start viewer server: %w", err), debug.Stack())
		if errors.Is(err, syscall.EADDRINUSE) {
			err = errext.WithHint(err, fmt.Sprintf("port %d is in use; pass a different --port", opts.Port))
		}
		return err
	}
	l.setState(Running)

	l.Printer.URL(urlHeading, url)
	l.Printer.List("Viewer Features", Features)
	l.Printer.Hint("Press Ctrl+C to stop")

	return l.wait(ctx)
}

// wait idles until ctx is done.
func (l *Launcher) wait(ctx context.Context) error {
	interval := l.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return &errext.InterruptError{Reason: context.Cause(ctx).Error()}
		case <-ticker.C:
		}
	}
}
