// Copyright LIMIT Lab, 2026. All rights reserved.

package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/limitlab/labsite/internal/content"
	"github.com/limitlab/labsite/internal/nav"
	"github.com/limitlab/labsite/internal/theme"
)

// Server serves the site from an in-memory content set. The content can be
// swapped while serving; each request sees one consistent snapshot.
type Server struct {
	renderer *Renderer
	logger   *zap.Logger
	content  atomic.Pointer[content.Content]
}

// NewServer creates a server for c.
func NewServer(c *content.Content, logger *zap.Logger) (*Server, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{renderer: r, logger: logger}
	s.content.Store(c)
	return s, nil
}

// SetContent replaces the served content set.
func (s *Server) SetContent(c *content.Content) {
	s.content.Store(c)
}

// Content returns the current content set.
func (s *Server) Content() *content.Content {
	return s.content.Load()
}

// Handler returns the site's router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(s.logger))
	r.Use(middleware.Recoverer)

	for _, it := range nav.Pages {
		r.Get(it.Path, s.handlePage(it.Page))
		if it.Path != "/" {
			r.Get(strings.TrimSuffix(it.Path, "/"), redirectSlash)
		}
	}

	r.Get("/api/publications", s.handleAPI)
	r.Get("/api/publications.json", s.handleAPI)
	r.Post("/theme", s.handleTheme)
	r.Get("/health", handleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(StaticFS()))))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "page not found", http.StatusNotFound)
	})

	return r
}

func redirectSlash(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Path + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePage(page nav.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := NewPageData(s.Content(), page, FilterFromQuery(r.URL.Query()),
			theme.FromRequest(r), theme.SystemDark(r))
		data.Return = r.URL.RequestURI()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Accept-CH", theme.HintHeader)
		w.Header().Set("Vary", theme.HintHeader+", Cookie")
		if err := s.renderer.Render(w, data); err != nil {
			s.logger.Error("rendering page",
				zap.String("request_id", RequestIDFromContext(r.Context())),
				zap.String("page", string(page)),
				zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	resp := NewAPIResponse(s.Content().Publications, FilterFromQuery(r.URL.Query()))
	w.Header().Set("Content-Type", "application/json")
	if err := resp.WriteJSON(w); err != nil {
		s.logger.Warn("writing api response", zap.Error(err))
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	mode, err := theme.Parse(r.PostForm.Get("theme"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	theme.SetCookie(w, mode)
	http.Redirect(w, r, safeReturn(r.PostForm.Get("return")), http.StatusSeeOther)
}

// safeReturn keeps redirects on this site.
func safeReturn(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return "/"
	}
	return p
}

// Run listens on addr and serves until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
