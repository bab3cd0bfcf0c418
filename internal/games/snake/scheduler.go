package snake

import "time"

// FrameResult tells the host what happened during one display frame.
type FrameResult struct {
	Stepped  bool       // A simulation step ran; the host should redraw
	Tick     TickResult // Result of the step, valid when Stepped
	Continue bool       // The host should request another frame
}

// Scheduler paces simulation steps by wall-clock time, independent of the
// display refresh rate. The host calls Frame once per refresh with the
// refresh timestamp; tests feed timestamps directly.
type Scheduler struct {
	session *Session
	last    time.Time
	epoch   uint64
}

// NewScheduler creates a scheduler driving s.
func NewScheduler(s *Session) *Scheduler {
	return &Scheduler{session: s}
}

// Frame runs at most one simulation step.
func (sc *Scheduler) Frame(now time.Time) FrameResult {
	s := sc.session

	if sc.epoch != s.Epoch() {
		sc.epoch = s.Epoch()
		sc.last = time.Time{}
	}

	switch s.Phase() {
	case PhasePaused:
		sc.last = now
		return FrameResult{Continue: true}
	case PhaseRunning:
	default:
		return FrameResult{}
	}

	if sc.last.IsZero() {
		sc.last = now
	}

	if now.Sub(sc.last) > s.Interval() {
		sc.last = now
		tick := s.Tick()
		return FrameResult{
			Stepped:  true,
			Tick:     tick,
			Continue: s.Phase() == PhaseRunning,
		}
	}

	return FrameResult{Continue: true}
}

// Active reports whether the session still needs frames.
func (sc *Scheduler) Active() bool {
	p := sc.session.Phase()
	return p == PhaseRunning || p == PhasePaused
}
