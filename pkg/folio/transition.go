package folio

import (
	"time"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// TransitionState is the phase of the page swap machine.
type TransitionState int

const (
	// TransitionIdle means no swap is in flight.
	TransitionIdle TransitionState = iota
	// TransitionExiting means the current page is animating out.
	TransitionExiting
	// TransitionEntering means the new page is animating in.
	TransitionEntering
)

func (s TransitionState) String() string {
	switch s {
	case TransitionIdle:
		return "idle"
	case TransitionExiting:
		return "exiting"
	case TransitionEntering:
		return "entering"
	default:
		return "unknown"
	}
}

// Stage is the rendering surface the transition engine drives. The page
// registry implements it; tests substitute a recorder.
type Stage interface {
	Has(id router.PageID) bool
	Activate(id router.PageID)
	Deactivate(id router.PageID)
	Trigger(id router.PageID, now time.Time)
}

// Engine sequences page swaps: exit the current page over a fixed duration,
// deactivate it, activate the target, settle it in, return to idle. It is
// driven from the frame loop via Update, so all phase changes happen on the
// main thread and a superseding navigation can cancel an in-flight swap by
// simply overwriting the pending state — no timers fire later against stale
// targets.
type Engine struct {
	stage Stage

	exitDuration   time.Duration
	settleDuration time.Duration

	state      TransitionState
	current    router.PageID
	pending    router.PageID
	phaseStart time.Time
	deadline   time.Time

	// generation increments whenever a navigation supersedes the previous
	// one; completions and tests key off it.
	generation uint64
	completed  uint64
}

func NewEngine(stage Stage) *Engine {
	return &Engine{
		stage:          stage,
		exitDuration:   constants.TransitionExitDuration,
		settleDuration: constants.TransitionSettleDuration,
		current:        router.PageNone,
		pending:        router.PageNone,
	}
}

// NavigateTo requests a swap to target. It returns false only when the
// navigation is abandoned because no page exists for target; the caller
// must then skip its own side effects (history, scroll, indicator). A
// repeat request for the page already on screen returns true without
// re-triggering anything.
func (e *Engine) NavigateTo(target router.PageID, now time.Time) bool {
	if !e.stage.Has(target) {
		return false
	}

	switch e.state {
	case TransitionIdle:
		if e.current == target {
			return true
		}
		if e.current == router.PageNone {
			// First page of the session: nothing to exit.
			e.activate(target, now)
			return true
		}
		e.beginExit(target, now)

	case TransitionExiting:
		if target == e.pending {
			// Already on the way there.
			return true
		}
		if target == e.current {
			// The exiting page is wanted back. It never deactivated, so
			// there is no new activation and no trigger; just settle it
			// back in.
			e.generation++
			e.pending = router.PageNone
			e.state = TransitionEntering
			e.phaseStart = now
			e.deadline = now.Add(e.settleDuration)
			return true
		}
		// Retarget the in-flight exit. The exit deadline stands; only the
		// page activated afterwards changes.
		e.generation++
		e.pending = target

	case TransitionEntering:
		if target == e.current {
			return true
		}
		// The entering page is fully active; demote it and start a fresh
		// exit toward the new target.
		e.beginExit(target, now)
	}

	return true
}

func (e *Engine) beginExit(target router.PageID, now time.Time) {
	e.generation++
	e.pending = target
	e.state = TransitionExiting
	e.phaseStart = now
	e.deadline = now.Add(e.exitDuration)
}

func (e *Engine) activate(target router.PageID, now time.Time) {
	e.generation++
	e.current = target
	e.pending = router.PageNone
	e.stage.Activate(target)
	e.stage.Trigger(target, now)
	e.state = TransitionEntering
	e.phaseStart = now
	e.deadline = now.Add(e.settleDuration)
}

// Update advances the machine past any elapsed phase deadline. Called once
// per frame.
func (e *Engine) Update(now time.Time) {
	if e.state == TransitionIdle || now.Before(e.deadline) {
		return
	}

	switch e.state {
	case TransitionExiting:
		if !e.stage.Has(e.pending) {
			// The target vanished mid-exit. Keep the current page rather
			// than ending with nothing on screen.
			e.pending = router.PageNone
			e.state = TransitionEntering
			e.phaseStart = now
			e.deadline = now.Add(e.settleDuration)
			return
		}
		e.stage.Deactivate(e.current)
		target := e.pending
		e.current = target
		e.pending = router.PageNone
		e.stage.Activate(target)
		e.stage.Trigger(target, now)
		e.state = TransitionEntering
		e.phaseStart = now
		e.deadline = now.Add(e.settleDuration)

	case TransitionEntering:
		e.state = TransitionIdle
		e.completed++
	}
}

// State returns the current phase.
func (e *Engine) State() TransitionState {
	return e.state
}

// Current returns the active page, or router.PageNone before the first
// navigation.
func (e *Engine) Current() router.PageID {
	return e.current
}

// PhaseProgress reports how far through the current phase the machine is,
// in [0, 1]. Idle reports 1 so a settled page renders at rest.
func (e *Engine) PhaseProgress(now time.Time) float64 {
	if e.state == TransitionIdle {
		return 1
	}
	total := e.deadline.Sub(e.phaseStart)
	if total <= 0 {
		return 1
	}
	elapsed := now.Sub(e.phaseStart)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}

// Completed reports how many swaps have fully settled. The shell uses it
// for the session stats.
func (e *Engine) Completed() uint64 {
	return e.completed
}
