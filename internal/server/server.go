// Package server is the HTTP surface: it parses requests, delegates
// translation and contact handling, and renders views. No request state
// is shared; the net/http server owns all concurrency.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/valpere/pereweb/internal/contact"
	"github.com/valpere/pereweb/internal/detector"
	"github.com/valpere/pereweb/internal/translator"
	"github.com/valpere/pereweb/internal/validator"
)

type Config struct {
	Addr          string        `mapstructure:"addr"`
	DefaultTarget string        `mapstructure:"default_target"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type Server struct {
	cfg        Config
	translator translator.TranslationService
	detector   *detector.Detector
	validator  *validator.Validator
	contacts   *contact.Recorder
	renderer   *Renderer
	logger     *log.Logger
	httpServer *http.Server
}

func New(cfg Config, svc translator.TranslationService, det *detector.Detector, contacts *contact.Recorder, logger *log.Logger) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	if cfg.DefaultTarget == "" {
		cfg.DefaultTarget = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	s := &Server{
		cfg:        cfg,
		translator: svc,
		detector:   det,
		validator:  validator.New(det),
		contacts:   contacts,
		renderer:   renderer,
		logger:     logger,
	}

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.logRequests(s.routes()),
	}

	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("POST /contact", s.handleContact)

	mux.HandleFunc("GET /api/languages", s.handleAPILanguages)
	mux.HandleFunc("POST /api/detect", s.handleAPIDetect)
	mux.HandleFunc("POST /api/translate", s.handleAPITranslate)
	mux.HandleFunc("POST /api/translate/batch", s.handleAPITranslateBatch)

	mux.HandleFunc("GET /healthz", s.handleHealth)

	return mux
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.routes())
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Printf("listening on %s", s.cfg.Addr)

	select {
	case <-ctx.Done():
		s.logger.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
