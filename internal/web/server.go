package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vish0009/MWPL-NSE/internal/config"
	"github.com/vish0009/MWPL-NSE/internal/dashboard"
	"github.com/vish0009/MWPL-NSE/internal/logger"
	"github.com/vish0009/MWPL-NSE/internal/storage"
)

type Server struct {
	httpServer *http.Server
	controller *dashboard.Controller
	repo       *storage.Repository
	config     *config.Config
	logger     *logger.Logger
	// initErr is the AI client construction failure, if any. When set, the
	// dashboard is served in disabled mode and refreshes are rejected for
	// the whole session.
	initErr error
}

func NewServer(ctrl *dashboard.Controller, initErr error, repo *storage.Repository, cfg *config.Config, log *logger.Logger) *Server {
	s := &Server{
		controller: ctrl,
		repo:       repo,
		config:     cfg,
		logger:     log,
		initErr:    initErr,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Web.Port),
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		// Write timeout must cover one full AI round trip.
		WriteTimeout: cfg.AITimeout() + 30*time.Second,
	}

	return s
}

func (s *Server) Start() error {
	s.logger.Info("web server starting", "port", s.config.Web.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
