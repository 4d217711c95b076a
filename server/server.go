// Package server provides the local HTTP server that hosts the live viewer
// for a remote browser session.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"

	"github.com/sonnes/liveview/browser"
	"github.com/sonnes/liveview/dcv"
	htmlrender "github.com/sonnes/liveview/render/html"
	"github.com/sonnes/liveview/session"
)

// ErrAlreadyStarted is returned by Start when the server is already serving.
var ErrAlreadyStarted = errors.New("viewer server already started")

// Config configures a Server.
type Config struct {
	// Host is the interface to bind. Empty means all interfaces.
	Host string
	// Port is the TCP port to listen on. Zero picks a free port.
	Port int
	// StaticDir holds the dcvjs/ SDK directory. Defaults to "static".
	StaticDir string
	// Store resolves session IDs to live view URLs.
	Store session.Store

	// Fs is the filesystem StaticDir lives on. Defaults to the OS filesystem.
	Fs afero.Fs
	// Logger defaults to the charm default logger.
	Logger *log.Logger
	// OpenURL opens the viewer locally when Start is asked to. Defaults to
	// browser.Open.
	OpenURL func(url string) error
}

// Server serves the viewer page, its API, and static assets.
type Server struct {
	cfg    Config
	log    *log.Logger
	dcvDir string
	pages  *htmlrender.Renderer
	router chi.Router
	sdk    dcv.Report

	mu           sync.RWMutex
	presignedURL string
	httpServer   *http.Server
	done         chan struct{}
}

// New validates cfg, prepares the static directory, and inspects the DCV SDK.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("session store is required")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.OpenURL == nil {
		cfg.OpenURL = browser.Open
	}

	s := &Server{
		cfg:    cfg,
		log:    cfg.Logger.WithPrefix("viewer"),
		dcvDir: filepath.Join(cfg.StaticDir, "dcvjs"),
	}

	if err := cfg.Fs.MkdirAll(s.dcvDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.dcvDir, err)
	}
	s.sdk = dcv.Inspect(cfg.Fs, s.dcvDir)

	pages, err := htmlrender.New()
	if err != nil {
		return nil, err
	}
	s.pages = pages
	s.router = s.routes()
	return s, nil
}

// SDK returns the DCV SDK inspection made when the server was created.
func (s *Server) SDK() dcv.Report { return s.sdk }

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ViewerURL returns the local URL of the viewer page for sessionID.
func ViewerURL(port int, sessionID string) string {
	q := url.Values{"browser_session_id": {sessionID}}
	return fmt.Sprintf("http://localhost:%d/?%s", port, q.Encode())
}

// Start binds the port and serves in the background. The port is bound
// before Start returns, so bind failures are reported here rather than
// logged later.
func (s *Server) Start(ctx context.Context, sessionID string, openBrowser bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.httpServer != nil {
		return "", ErrAlreadyStarted
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("serve", "err", err)
		}
	}()
	s.httpServer = srv
	s.done = done

	port := ln.Addr().(*net.TCPAddr).Port
	viewerURL := ViewerURL(port, sessionID)
	s.log.Info("viewer server running", "url", viewerURL)
	s.log.Info("check the browser console (F12) for detailed debug information")

	if openBrowser {
		s.log.Info("opening browser")
		if err := s.cfg.OpenURL(viewerURL); err != nil {
			s.log.Warn("open browser", "err", err)
		}
	}
	return viewerURL, nil
}

// Shutdown gracefully stops the server. It is a no-op if Start was never
// called.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.httpServer, s.done
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) setPresignedURL(u string) {
	s.mu.Lock()
	s.presignedURL = u
	s.mu.Unlock()
}

func (s *Server) currentPresignedURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presignedURL
}

// reportedDirs returns the static and dcvjs directories for the debug
// endpoint, made absolute when they live on the OS filesystem.
func (s *Server) reportedDirs() (string, string) {
	static, dcvDir := s.cfg.StaticDir, s.dcvDir
	if _, ok := s.cfg.Fs.(*afero.OsFs); ok {
		if abs, err := filepath.Abs(static); err == nil {
			static = abs
			dcvDir = filepath.Join(abs, "dcvjs")
		}
	}
	return static, dcvDir
}
