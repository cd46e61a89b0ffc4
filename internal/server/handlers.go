package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/switchride/internal/apperror"
	"github.com/theirongolddev/switchride/internal/calc"
	"github.com/theirongolddev/switchride/internal/carousel"
	"github.com/theirongolddev/switchride/internal/config"
	"github.com/theirongolddev/switchride/internal/content"
	"github.com/theirongolddev/switchride/internal/model"
)

// SavingsResponse is served at /v1/savings. Money fields are decimal strings.
type SavingsResponse struct {
	model.CostResult
	CostPerKmDelta float64          `json:"cost_per_km_delta"`
	Rates          config.RateTable `json:"rates"`
}

// RangeResponse is served at /v1/range.
type RangeResponse struct {
	model.RangeResult
	Budgets []int            `json:"budgets"`
	Rates   config.RateTable `json:"rates"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handlePage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.page)
}

func (s *Service) handleSection(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("anchor")
	anchor, ok := content.ParseAnchor(name)
	if !ok {
		s.writeError(w, apperror.NotFound(fmt.Sprintf("no section %q", name), nil), "")
		return
	}
	sec, _ := s.page.SectionFor(anchor)
	writeJSON(w, http.StatusOK, sec)
}

func (s *Service) handleSavings(w http.ResponseWriter, r *http.Request) {
	km := s.cfg.General.MonthlyKm
	if raw := r.URL.Query().Get("km"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			s.writeError(w, apperror.BadParam("km", fmt.Sprintf("km %q is not a number", raw), err), "")
			return
		}
		if !s.slider.Contains(v) {
			s.writeError(w, apperror.BadParam("km",
				fmt.Sprintf("km must be between %g and %g", s.slider.Min, s.slider.Max), nil), "")
			return
		}
		km = v
	}

	writeJSON(w, http.StatusOK, SavingsResponse{
		CostResult:     calc.ComputeCost(s.slider.Snap(km), s.cfg.Rates),
		CostPerKmDelta: calc.CostPerKmDelta(s.cfg.Rates),
		Rates:          s.cfg.Rates,
	})
}

func (s *Service) handleRange(w http.ResponseWriter, r *http.Request) {
	budget := s.budgets.Default(s.cfg.General.Budget)
	if raw := r.URL.Query().Get("budget"); raw != "" {
		b, err := s.budgets.Parse(raw)
		if err != nil {
			s.writeError(w, apperror.BadParam("budget", err.Error(), err), "")
			return
		}
		budget = b
	}

	amounts := make([]int, 0, s.budgets.Len())
	for _, b := range s.budgets.All() {
		amounts = append(amounts, b.Amount())
	}

	writeJSON(w, http.StatusOK, RangeResponse{
		RangeResult: calc.ComputeRange(budget, s.cfg.Rates),
		Budgets:     amounts,
		Rates:       s.cfg.Rates,
	})
}

func (s *Service) handleCarousel(w http.ResponseWriter, r *http.Request) {
	st, err := s.player.State(r.Context())
	if err != nil {
		s.writeError(w, err, "failed to read carousel state")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Service) handleNext(w http.ResponseWriter, r *http.Request) {
	s.respondState(w)(s.player.Next(r.Context()))
}

func (s *Service) handlePrevious(w http.ResponseWriter, r *http.Request) {
	s.respondState(w)(s.player.Previous(r.Context()))
}

func (s *Service) handleGoTo(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("index")
	i, err := strconv.Atoi(raw)
	if err != nil {
		s.writeError(w, apperror.BadParam("index", fmt.Sprintf("index %q is not an integer", raw), err), "")
		return
	}
	st, err := s.player.GoTo(r.Context(), i)
	if errors.Is(err, carousel.ErrIndexOutOfRange) {
		err = apperror.BadParam("index", err.Error(), err)
	}
	s.respondState(w)(st, err)
}

func (s *Service) respondState(w http.ResponseWriter) func(carousel.State, error) {
	return func(st carousel.State, err error) {
		if err != nil {
			s.writeError(w, err, "carousel command failed")
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	st, err := s.player.State(r.Context())
	if err != nil {
		s.writeError(w, err, "failed to read carousel state")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	writeSSE(w, Event{Type: EventState, Timestamp: time.Now(), State: &st})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}
