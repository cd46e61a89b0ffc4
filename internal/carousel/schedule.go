package carousel

import "time"

// DefaultInterval is how long each slide stays up before auto-advance.
const DefaultInterval = 8 * time.Second

// ResetPolicy decides whether user navigation restarts the auto-advance phase.
type ResetPolicy int

const (
	// ResetOnNavigate gives the newly chosen slide a full interval.
	ResetOnNavigate ResetPolicy = iota
	// KeepPhase leaves the timer on its original schedule.
	KeepPhase
)

// PolicyFor maps the config flag to a policy.
func PolicyFor(resetOnNavigate bool) ResetPolicy {
	if resetOnNavigate {
		return ResetOnNavigate
	}
	return KeepPhase
}

func (p ResetPolicy) String() string {
	if p == KeepPhase {
		return "keep-phase"
	}
	return "reset-on-navigate"
}

// Schedule tracks the auto-advance phase against a caller-supplied clock.
type Schedule struct {
	interval   time.Duration
	policy     ResetPolicy
	phaseStart time.Time
	running    bool
}

// NewSchedule returns a stopped schedule. Non-positive intervals use DefaultInterval.
func NewSchedule(interval time.Duration, policy ResetPolicy) Schedule {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Schedule{interval: interval, policy: policy}
}

// Interval returns the auto-advance period.
func (s Schedule) Interval() time.Duration { return s.interval }

// Policy returns the navigation reset policy.
func (s Schedule) Policy() ResetPolicy { return s.policy }

// Running reports whether the schedule is mounted.
func (s Schedule) Running() bool { return s.running }

// Start mounts the schedule with a fresh phase.
func (s *Schedule) Start(now time.Time) {
	s.running = true
	s.phaseStart = now
}

// Stop unmounts the schedule.
func (s *Schedule) Stop() {
	s.running = false
}

// Due reports whether an automatic advance should fire at now.
func (s Schedule) Due(now time.Time) bool {
	return s.running && now.Sub(s.phaseStart) >= s.interval
}

// Fired records an automatic advance.
func (s *Schedule) Fired(now time.Time) {
	s.phaseStart = now
}

// Navigated records a user-initiated transition and reports whether the
// phase was restarted.
func (s *Schedule) Navigated(now time.Time) bool {
	if s.policy != ResetOnNavigate {
		return false
	}
	s.phaseStart = now
	return true
}

// Progress is the elapsed fraction of the current interval, in [0, 1].
func (s Schedule) Progress(now time.Time) float64 {
	if !s.running {
		return 0
	}
	f := float64(now.Sub(s.phaseStart)) / float64(s.interval)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Remaining is the time left before the next automatic advance.
func (s Schedule) Remaining(now time.Time) time.Duration {
	if !s.running {
		return 0
	}
	left := s.interval - now.Sub(s.phaseStart)
	if left < 0 {
		return 0
	}
	return left
}
