// Package dashboard orchestrates one fetch→extract→normalize→render cycle
// and owns the loading/error state the web layer exposes.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vish0009/MWPL-NSE/internal/ai"
	"github.com/vish0009/MWPL-NSE/internal/logger"
	"github.com/vish0009/MWPL-NSE/internal/report"
	"github.com/vish0009/MWPL-NSE/internal/storage"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// RenderError wraps an unexpected failure while building section markup.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// FetchRecorder persists one cycle's audit record.
type FetchRecorder interface {
	SaveFetchLog(log *storage.FetchLog) error
}

// Notifier is told about failed cycles.
type Notifier interface {
	NotifyFetchError(stage string, err error)
}

// Controller runs refresh cycles. Cycles are not designed to overlap; if two
// run anyway, the last writer wins, which is acceptable for a single-viewer
// dashboard. The state field only needs a lock because web handlers read it.
type Controller struct {
	client   ai.Client
	provider string
	recorder FetchRecorder
	notifier Notifier
	logger   *logger.Logger

	mu    sync.Mutex
	state State
}

func NewController(client ai.Client, provider string, recorder FetchRecorder, notifier Notifier, log *logger.Logger) *Controller {
	return &Controller{
		client:   client,
		provider: provider,
		recorder: recorder,
		notifier: notifier,
		logger:   log,
		state:    StateIdle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Refresh runs one full cycle. The terminal state (and with it the caller's
// ability to retry) is restored on every exit path, including panics inside
// rendering, via the deferred block below.
func (c *Controller) Refresh(ctx context.Context) (view *View, err error) {
	start := time.Now()
	c.setState(StateLoading)

	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Err: fmt.Errorf("%v", r)}
			view = nil
		}
		if err != nil {
			c.setState(StateFailed)
			c.logger.Error("refresh failed", "stage", failureStage(err), "error", err)
			c.notifier.NotifyFetchError(failureStage(err), err)
		} else {
			c.setState(StateSuccess)
		}
		c.record(view, err, time.Since(start))
	}()

	resp, err := c.client.GenerateMarketSummary(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := report.ParsePayload(resp.Text)
	if err != nil {
		return nil, err
	}

	rep := report.Normalize(doc)

	view, err = renderView(rep, resp.Citations)
	if err != nil {
		return nil, err
	}
	view.responseLength = len(resp.Text)
	view.citationCount = len(resp.Citations)

	c.logger.Info("refresh complete",
		"sections", strings.Join(view.sections(), ","),
		"citations", len(resp.Citations),
		"duration", time.Since(start))
	return view, nil
}

// FailureMessage converts a cycle error into the single human-readable string
// shown in the error banner.
func FailureMessage(err error) string {
	return fmt.Sprintf("Failed to generate market summary: %v", err)
}

func failureStage(err error) string {
	var (
		transportErr *ai.TransportError
		formatErr    *report.FormatError
		parseErr     *report.ParseError
		renderErr    *RenderError
	)
	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &formatErr):
		return "format"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &renderErr):
		return "render"
	default:
		return "unknown"
	}
}

func (c *Controller) record(view *View, err error, elapsed time.Duration) {
	if c.recorder == nil {
		return
	}

	log := &storage.FetchLog{
		Provider:   c.provider,
		Status:     "success",
		DurationMs: elapsed.Milliseconds(),
	}
	if err != nil {
		log.Status = "failed"
		log.Error = err.Error()
	} else if view != nil {
		log.ResponseLength = view.responseLength
		log.CitationCount = view.citationCount
		log.Sections = strings.Join(view.sections(), ",")
	}

	if saveErr := c.recorder.SaveFetchLog(log); saveErr != nil {
		c.logger.Error("save fetch log", "error", saveErr)
	}
}
