package carousel

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/theirongolddev/switchride/internal/model"
)

var (
	// ErrPlayerStopped is returned by commands sent after Run has returned.
	ErrPlayerStopped = errors.New("carousel: player stopped")
	// ErrPlayerStarted is returned when Run is called twice.
	ErrPlayerStarted = errors.New("carousel: player already started")
)

// Ticker is the periodic timer a Player owns while running.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerFunc creates a started ticker.
type TickerFunc func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time    { return s.t.C }
func (s stdTicker) Reset(d time.Duration) { s.t.Reset(d) }
func (s stdTicker) Stop()                  { s.t.Stop() }

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Cause says what triggered a slide change.
type Cause string

// Slide change causes.
const (
	CauseTimer    Cause = "timer"
	CauseNext     Cause = "next"
	CausePrevious Cause = "previous"
	CauseGoTo     Cause = "goto"
)

// Change describes one transition.
type Change struct {
	From  int         `json:"from"`
	To    int         `json:"to"`
	Slide model.Slide `json:"slide"`
	Cause Cause       `json:"cause"`
	At    time.Time   `json:"at"`
}

// State is a read-only view of the player.
type State struct {
	Index       int           `json:"index"`
	Count       int           `json:"count"`
	Slide       model.Slide   `json:"slide"`
	Progress    float64       `json:"progress"`
	IntervalSec float64       `json:"interval_sec"`
	Remaining   time.Duration `json:"remaining_ns"`
	Policy      string        `json:"policy"`
	Running     bool          `json:"running"`
}

type commandKind int

const (
	cmdState commandKind = iota
	cmdNext
	cmdPrevious
	cmdGoTo
)

type command struct {
	kind  commandKind
	index int
	reply chan result
}

type result struct {
	state State
	err   error
}

// Player drives a Carousel from a ticker it owns.
type Player struct {
	carousel  Carousel
	sched     Schedule
	newTicker TickerFunc
	now       func() time.Time
	onChange  func(Change)

	cmds    chan command
	done    chan struct{}
	started atomic.Bool
}

// PlayerOption customizes a Player.
type PlayerOption func(*Player)

// WithTicker replaces the real ticker, mainly for tests.
func WithTicker(fn TickerFunc) PlayerOption {
	return func(p *Player) { p.newTicker = fn }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) PlayerOption {
	return func(p *Player) { p.now = now }
}

// OnChange registers a callback invoked on the player goroutine after each
// transition. It must not call back into the player.
func OnChange(fn func(Change)) PlayerOption {
	return func(p *Player) { p.onChange = fn }
}

// NewPlayer returns a player that is not yet running.
func NewPlayer(c Carousel, interval time.Duration, policy ResetPolicy, opts ...PlayerOption) *Player {
	p := &Player{
		carousel:  c,
		sched:     NewSchedule(interval, policy),
		newTicker: NewTicker,
		now:       time.Now,
		cmds:      make(chan command),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run mounts the carousel: it starts the ticker, serves commands, and
// advances on every tick until ctx is canceled. The ticker is stopped
// exactly once when Run returns. A Player can only be run once.
func (p *Player) Run(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return ErrPlayerStarted
	}
	defer close(p.done)

	ticker := p.newTicker(p.sched.Interval())
	defer ticker.Stop()

	p.sched.Start(p.now())
	defer p.sched.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case at := <-ticker.C():
			from := p.carousel.Index()
			p.carousel.Next()
			p.sched.Fired(at)
			p.emit(from, CauseTimer, at)

		case cmd := <-p.cmds:
			cmd.reply <- p.apply(cmd, ticker)
		}
	}
}

func (p *Player) apply(cmd command, ticker Ticker) result {
	now := p.now()
	from := p.carousel.Index()

	var cause Cause
	switch cmd.kind {
	case cmdState:
		return result{state: p.state(now)}
	case cmdNext:
		p.carousel.Next()
		cause = CauseNext
	case cmdPrevious:
		p.carousel.Previous()
		cause = CausePrevious
	case cmdGoTo:
		if err := p.carousel.GoTo(cmd.index); err != nil {
			return result{state: p.state(now), err: err}
		}
		cause = CauseGoTo
	}

	if p.sched.Navigated(now) {
		ticker.Reset(p.sched.Interval())
	}
	p.emit(from, cause, now)
	return result{state: p.state(now)}
}

func (p *Player) emit(from int, cause Cause, at time.Time) {
	if p.onChange == nil {
		return
	}
	p.onChange(Change{
		From:  from,
		To:    p.carousel.Index(),
		Slide: p.carousel.Current(),
		Cause: cause,
		At:    at,
	})
}

func (p *Player) state(now time.Time) State {
	return State{
		Index:       p.carousel.Index(),
		Count:       p.carousel.Len(),
		Slide:       p.carousel.Current(),
		Progress:    p.sched.Progress(now),
		IntervalSec: p.sched.Interval().Seconds(),
		Remaining:   p.sched.Remaining(now),
		Policy:      p.sched.Policy().String(),
		Running:     p.sched.Running(),
	}
}

func (p *Player) send(ctx context.Context, cmd command) (State, error) {
	cmd.reply = make(chan result, 1)
	select {
	case p.cmds <- cmd:
	case <-p.done:
		return State{}, ErrPlayerStopped
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
	res := <-cmd.reply
	return res.state, res.err
}

// State returns the current index, slide and auto-advance progress.
func (p *Player) State(ctx context.Context) (State, error) {
	return p.send(ctx, command{kind: cmdState})
}

// Next advances one slide on behalf of the user.
func (p *Player) Next(ctx context.Context) (State, error) {
	return p.send(ctx, command{kind: cmdNext})
}

// Previous goes back one slide on behalf of the user.
func (p *Player) Previous(ctx context.Context) (State, error) {
	return p.send(ctx, command{kind: cmdPrevious})
}

// GoTo jumps to slide i. Out-of-range indices return ErrIndexOutOfRange.
func (p *Player) GoTo(ctx context.Context, i int) (State, error) {
	return p.send(ctx, command{kind: cmdGoTo, index: i})
}

// Done is closed once Run has returned.
func (p *Player) Done() <-chan struct{} {
	return p.done
}
