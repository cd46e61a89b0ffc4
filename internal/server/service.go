// Package server exposes the calculators and a live hero carousel over HTTP,
// with slide changes streamed as server-sent events.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/switchride/internal/calc"
	"github.com/theirongolddev/switchride/internal/carousel"
	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/content"
	"github.com/theirongolddev/switchride/internal/logger"
	"github.com/theirongolddev/switchride/internal/model"
)

// Event types.
const (
	EventState       = "state"
	EventSlideChange = "slide_change"
)

// Event is a ring-buffered carousel notification.
type Event struct {
	ID        int64            `json:"id"`
	Type      string           `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Change    *carousel.Change `json:"change,omitempty"`
	State     *carousel.State  `json:"state,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	Addr            string    `json:"addr"`
	IntervalSec     int       `json:"interval_sec"`
	Policy          string    `json:"policy"`
	SlideChanges    int64     `json:"slide_changes"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Option customizes a Service.
type Option func(*Service)

// WithTicker replaces the carousel's real ticker.
func WithTicker(fn carousel.TickerFunc) Option {
	return func(s *Service) { s.tickerFn = fn }
}

// Service owns the carousel player and serves the HTTP API.
type Service struct {
	cfg      config.Config
	log      *logger.Logger
	page     model.Page
	slider   calc.Slider
	budgets  calc.BudgetSet
	player   *carousel.Player
	limiter  *RateLimiter
	tickerFn carousel.TickerFunc

	mu           sync.RWMutex
	startedAt    time.Time
	slideChanges int64
	nextEventID  int64
	events       []Event

	nextSubID int
	subs      map[int]chan Event
}

// New builds a service from a validated config. The carousel does not move
// until Run is called.
func New(cfg config.Config, log *logger.Logger, opts ...Option) (*Service, error) {
	if cfg.Server.EventsBuffer < 1 {
		cfg.Server.EventsBuffer = 200
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = config.DefaultConfig().Server.Addr
	}
	if log == nil {
		log = logger.NewDiscard()
	}

	budgets, err := calc.NewBudgetSet(cfg.Range.Budgets)
	if err != nil {
		return nil, fmt.Errorf("building budget set: %w", err)
	}

	page := content.Page()
	c, err := carousel.New(page.Slides)
	if err != nil {
		return nil, fmt.Errorf("building carousel: %w", err)
	}

	s := &Service{
		cfg:       cfg,
		log:       log,
		page:      page,
		slider:    calc.NewSlider(cfg.Slider),
		budgets:   budgets,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(s)
	}

	playerOpts := []carousel.PlayerOption{carousel.OnChange(s.recordChange)}
	if s.tickerFn != nil {
		playerOpts = append(playerOpts, carousel.WithTicker(s.tickerFn))
	}
	s.player = carousel.NewPlayer(c,
		time.Duration(cfg.Carousel.IntervalSec)*time.Second,
		carousel.PolicyFor(cfg.Carousel.ResetOnNavigate),
		playerOpts...)
	s.limiter = NewRateLimiter(cfg.Server.RateLimit, time.Duration(cfg.Server.RateWindowSec)*time.Second)

	return s, nil
}

// Handler returns the API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/page", s.handlePage)
	mux.HandleFunc("GET /v1/page/sections/{anchor}", s.handleSection)
	mux.HandleFunc("GET /v1/savings", s.handleSavings)
	mux.HandleFunc("GET /v1/range", s.handleRange)
	mux.HandleFunc("GET /v1/carousel", s.handleCarousel)
	mux.HandleFunc("POST /v1/carousel/next", s.rateLimit(s.handleNext))
	mux.HandleFunc("POST /v1/carousel/previous", s.rateLimit(s.handlePrevious))
	mux.HandleFunc("POST /v1/carousel/goto", s.rateLimit(s.handleGoTo))
	mux.HandleFunc("GET /v1/carousel/events", s.handleEvents)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	return s.logRequests(mux)
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		s.limiter.Stop()
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve mounts the carousel and serves HTTP on ln until ctx is canceled.
// Shutdown stops the player, which releases its ticker, and closes open
// streams. Serve closes ln.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.limiter.Stop()

	go func() {
		if err := s.player.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.log.WithError(err).Error("carousel player stopped")
		}
	}()

	server := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.WithFields(logrus.Fields{
		"addr":     ln.Addr().String(),
		"interval": s.cfg.Carousel.IntervalSec,
		"policy":   carousel.PolicyFor(s.cfg.Carousel.ResetOnNavigate).String(),
	}).Info("serving")

	select {
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		err := server.Shutdown(shutdownCtx)
		<-s.player.Done()
		s.log.Info("stopped")
		return err
	case err := <-errCh:
		cancel()
		<-s.player.Done()
		return fmt.Errorf("http server: %w", err)
	}
}

// recordChange runs on the player goroutine.
func (s *Service) recordChange(c carousel.Change) {
	s.mu.Lock()
	s.slideChanges++
	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      EventSlideChange,
		Timestamp: c.At,
		Change:    &c,
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"from":  c.From,
		"to":    c.To,
		"slide": c.Slide.ID,
		"cause": c.Cause,
	}).Debug("slide changed")

	s.publishEvent(ev)
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.Server.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.Server.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		Addr:            s.cfg.Server.Addr,
		IntervalSec:     s.cfg.Carousel.IntervalSec,
		Policy:          carousel.PolicyFor(s.cfg.Carousel.ResetOnNavigate).String(),
		SlideChanges:    s.slideChanges,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
