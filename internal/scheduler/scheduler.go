package scheduler

import (
	"context"
	"time"

	"github.com/vish0009/MWPL-NSE/internal/config"
	"github.com/vish0009/MWPL-NSE/internal/dashboard"
	"github.com/vish0009/MWPL-NSE/internal/logger"
)

// Scheduler optionally runs a refresh cycle on a fixed interval so provider
// failures (quota, auth, revoked key) surface in the fetch log and Telegram
// before a viewer hits them. Results are not retained between cycles; the
// user-triggered button is the primary path. Disabled by default.
type Scheduler struct {
	controller *dashboard.Controller
	config     *config.Config
	logger     *logger.Logger
}

func NewScheduler(ctrl *dashboard.Controller, cfg *config.Config, log *logger.Logger) *Scheduler {
	return &Scheduler{
		controller: ctrl,
		config:     cfg,
		logger:     log,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	if !s.config.Refresh.Enabled {
		s.logger.Info("auto-refresh disabled")
		return
	}

	interval := s.config.RefreshInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("auto-refresh started", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("auto-refresh stopped")
			return
		case <-ticker.C:
			// Failed ticks are already logged and notified by the
			// controller; nothing to do with the view here.
			_, _ = s.controller.Refresh(ctx)
		}
	}
}
