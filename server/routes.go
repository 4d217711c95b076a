package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/sonnes/liveview/core"
	"github.com/sonnes/liveview/dcv"
	htmlrender "github.com/sonnes/liveview/render/html"
	renderjson "github.com/sonnes/liveview/render/json"
	"github.com/sonnes/liveview/session"
)

// RequestIDHeader carries the per-request ID assigned by the server.
const RequestIDHeader = "X-Request-Id"

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimw.RealIP)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleViewer)
	r.Get("/setup", s.handleSetup)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/session-info", s.handleSessionInfo)
		r.Get("/debug-info", s.handleDebugInfo)
	})

	sdk := afero.NewHttpFs(afero.NewBasePathFs(s.cfg.Fs, s.dcvDir))
	r.Handle("/static/dcvjs/*", http.StripPrefix("/static/dcvjs", http.FileServer(sdk)))
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(htmlrender.Static()))))

	return r
}

// requestID tags each request with a UUID, reusing one supplied by a proxy.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
			"request_id", w.Header().Get(RequestIDHeader),
		)
	})
}

func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("browser_session_id")
	if id == "" {
		http.Error(w, "browser_session_id is required", http.StatusBadRequest)
		return
	}

	liveURL, err := s.cfg.Store.LiveViewURL(r.Context(), id)
	switch {
	case errors.Is(err, session.ErrNotFound):
		s.log.Warn("session not found", "browser_session_id", id, "err", err)
		http.Error(w, "live view URL not found for session "+id, http.StatusNotFound)
		return
	case err != nil:
		s.log.Error("get session data", "browser_session_id", id, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.setPresignedURL(liveURL)
	s.log.Info("using live view url", "browser_session_id", id, "url", core.Truncate(liveURL, 100))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.RenderViewer(w, htmlrender.ViewerData{
		SessionID:    id,
		PresignedURL: liveURL,
		Sizes:        core.DisplaySizes,
		Default:      core.DefaultDisplaySize,
	}); err != nil {
		s.log.Error("render viewer", "browser_session_id", id, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	report := dcv.Inspect(s.cfg.Fs, s.dcvDir)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages.RenderSetup(w, report); err != nil {
		s.log.Error("render setup", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// SessionInfo is the body of GET /api/session-info.
type SessionInfo struct {
	PresignedURL string             `json:"presigned_url"`
	DisplaySizes []core.DisplaySize `json:"display_sizes"`
}

func (s *Server) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, SessionInfo{
		PresignedURL: s.currentPresignedURL(),
		DisplaySizes: core.DisplaySizes,
	})
}

// DebugInfo is the body of GET /api/debug-info.
type DebugInfo struct {
	DCVFiles map[string]dcv.FileInfo `json:"dcv_files"`
	Session  struct {
		PresignedURL string `json:"presigned_url"`
	} `json:"session"`
	Server struct {
		StaticDir string `json:"static_dir"`
		DCVDir    string `json:"dcv_dir"`
	} `json:"server"`
}

func (s *Server) handleDebugInfo(w http.ResponseWriter, r *http.Request) {
	var info DebugInfo
	info.DCVFiles = dcv.Inspect(s.cfg.Fs, s.dcvDir).Files
	info.Session.PresignedURL = core.Truncate(s.currentPresignedURL(), 100)
	info.Server.StaticDir, info.Server.DCVDir = s.reportedDirs()
	writeJSON(w, info)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := (&renderjson.Renderer{}).Render(w, v); err != nil {
		log.Error("encode response", "err", err)
	}
}
