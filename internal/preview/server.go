// Package preview serves a small web app that renders the component
// fixtures and a date of birth form bound through the date binder.
package preview

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gotemplatepkg "github.com/goliatone/go-template"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-govuk/pkg/binding"
	"github.com/goliatone/go-govuk/pkg/components"
)

//go:embed pages/*.tmpl
var embeddedPages embed.FS

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithFixtures replaces the embedded example fixtures.
func WithFixtures(fixtures *Fixtures) Option {
	return func(s *Server) {
		if fixtures != nil {
			s.fixtures = fixtures
		}
	}
}

// WithBinder sets the binder used by the date of birth example.
func WithBinder(binder *binding.Binder) Option {
	return func(s *Server) {
		if binder != nil {
			s.binder = binder
		}
	}
}

// WithClock overrides the clock used to reject future dates of birth.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStylesheet links a GOV.UK Frontend stylesheet from every page.
func WithStylesheet(href string) Option {
	return func(s *Server) {
		s.stylesheet = href
	}
}

// Server renders preview pages.
type Server struct {
	generator  *components.Generator
	binder     *binding.Binder
	fixtures   *Fixtures
	pages      *gotemplatepkg.Engine
	logger     zerolog.Logger
	now        func() time.Time
	stylesheet string
	router     chi.Router
}

// New builds a preview server rendering through generator.
func New(generator *components.Generator, options ...Option) (*Server, error) {
	if generator == nil {
		return nil, errors.New("preview: generator is required")
	}

	s := &Server{
		generator: generator,
		logger:    zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	if s.binder == nil {
		s.binder = binding.New(binding.WithAcceptMonthNames(true), binding.WithLogger(s.logger))
	}
	if s.fixtures == nil {
		fixtures, err := DefaultFixtures()
		if err != nil {
			return nil, err
		}
		s.fixtures = fixtures
	}

	pages, err := newPages()
	if err != nil {
		return nil, fmt.Errorf("preview: configure pages: %w", err)
	}
	s.pages = pages
	s.router = s.routes()
	return s, nil
}

// newPages loads the embedded page templates with go-template. Pages are
// rendered by bare name ("index", "layout").
func newPages() (*gotemplatepkg.Engine, error) {
	pages, err := gotemplatepkg.NewRenderer(
		gotemplatepkg.WithFS(embeddedPages),
		gotemplatepkg.WithExtension(".tmpl"),
	)
	if err != nil {
		return nil, err
	}
	pages.RegisterPreHook(func(hc *gotemplatepkg.HookContext) error {
		if !strings.HasPrefix(hc.TemplateName, "pages/") {
			hc.TemplateName = "pages/" + hc.TemplateName
		}
		return nil
	})
	return pages, nil
}

// Handler returns the HTTP handler for the preview app.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("preview server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("preview: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/components/{name}", s.handleComponent)
	r.Get(dateOfBirthPath, s.handleDateOfBirth)
	r.Post(dateOfBirthPath, s.handleDateOfBirthSubmit)
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

func (s *Server) writePage(w http.ResponseWriter, status int, title, body string) {
	out, err := s.pages.RenderTemplate("layout", map[string]any{
		"title":      title,
		"body":       body,
		"stylesheet": s.stylesheet,
	})
	if err != nil {
		s.fail(w, "render layout", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(out))
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error, fields ...any) {
	s.logger.Error().Err(err).Fields(fields).Msg(msg)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
