package folio

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

const (
	testPageHome router.PageID = iota
	testPageAbout
	testPageProjects
)

// stageRecorder stands in for the page registry and records every call the
// engine makes, so tests can assert ordering and exactly-once triggers.
type stageRecorder struct {
	pages    map[router.PageID]bool
	active   map[router.PageID]bool
	triggers map[router.PageID]int
	calls    []string
}

func newStageRecorder(ids ...router.PageID) *stageRecorder {
	s := &stageRecorder{
		pages:    make(map[router.PageID]bool),
		active:   make(map[router.PageID]bool),
		triggers: make(map[router.PageID]int),
	}
	for _, id := range ids {
		s.pages[id] = true
	}
	return s
}

func (s *stageRecorder) Has(id router.PageID) bool { return s.pages[id] }

func (s *stageRecorder) Activate(id router.PageID) {
	s.active[id] = true
	s.calls = append(s.calls, fmt.Sprintf("activate:%d", id))
}

func (s *stageRecorder) Deactivate(id router.PageID) {
	delete(s.active, id)
	s.calls = append(s.calls, fmt.Sprintf("deactivate:%d", id))
}

func (s *stageRecorder) Trigger(id router.PageID, _ time.Time) {
	s.triggers[id]++
	s.calls = append(s.calls, fmt.Sprintf("trigger:%d", id))
}

func (s *stageRecorder) activeCount() int { return len(s.active) }

func newTestEngine(stage Stage) *Engine {
	engine := NewEngine(stage)
	engine.exitDuration = 100 * time.Millisecond
	engine.settleDuration = 200 * time.Millisecond
	return engine
}

var transitionEpoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestFirstNavigationActivatesImmediately(t *testing.T) {
	stage := newStageRecorder(testPageHome)
	engine := newTestEngine(stage)

	require.True(t, engine.NavigateTo(testPageHome, transitionEpoch))

	// No exit phase: straight to entering with the page triggered once.
	assert.Equal(t, []string{"activate:0", "trigger:0"}, stage.calls)
	assert.Equal(t, TransitionEntering, engine.State())
	assert.Equal(t, testPageHome, engine.Current())

	engine.Update(transitionEpoch.Add(200 * time.Millisecond))
	assert.Equal(t, TransitionIdle, engine.State())
	assert.Equal(t, 1, stage.triggers[testPageHome])
}

func TestRepeatNavigationIsNoOp(t *testing.T) {
	stage := newStageRecorder(testPageAbout)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageAbout, now))
	engine.Update(now.Add(200 * time.Millisecond))

	require.True(t, engine.NavigateTo(testPageAbout, now.Add(300*time.Millisecond)))
	engine.Update(now.Add(time.Second))

	assert.Equal(t, TransitionIdle, engine.State())
	assert.Equal(t, 1, stage.triggers[testPageAbout], "repeat navigation must not re-trigger")
	assert.Equal(t, []string{"activate:1", "trigger:1"}, stage.calls)
}

func TestFullSwapSequence(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageProjects)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageHome, now))
	engine.Update(now.Add(200 * time.Millisecond))
	stage.calls = nil

	now = now.Add(time.Second)
	require.True(t, engine.NavigateTo(testPageProjects, now))
	assert.Equal(t, TransitionExiting, engine.State())
	assert.Equal(t, testPageHome, engine.Current(), "old page stays current until the exit elapses")

	// Mid-exit nothing has happened on stage yet.
	engine.Update(now.Add(50 * time.Millisecond))
	assert.Empty(t, stage.calls)

	// Exit deadline: deactivate old, activate and trigger new, in order.
	engine.Update(now.Add(100 * time.Millisecond))
	assert.Equal(t, []string{"deactivate:0", "activate:2", "trigger:2"}, stage.calls)
	assert.Equal(t, TransitionEntering, engine.State())
	assert.Equal(t, testPageProjects, engine.Current())
	assert.Equal(t, 1, stage.activeCount())

	// Settle deadline: back to idle.
	engine.Update(now.Add(300 * time.Millisecond))
	assert.Equal(t, TransitionIdle, engine.State())
	assert.Equal(t, 1, stage.triggers[testPageProjects])
}

func TestNavigationAbandonedWhenPageMissing(t *testing.T) {
	stage := newStageRecorder(testPageHome)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageHome, now))
	engine.Update(now.Add(200 * time.Millisecond))
	stage.calls = nil

	assert.False(t, engine.NavigateTo(testPageProjects, now.Add(time.Second)))
	assert.Empty(t, stage.calls, "abandoned navigation must not touch the stage")
	assert.Equal(t, TransitionIdle, engine.State())
	assert.Equal(t, testPageHome, engine.Current())
}

func TestRetargetMidExit(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout, testPageProjects)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageHome, now))
	engine.Update(now.Add(200 * time.Millisecond))
	stage.calls = nil

	now = now.Add(time.Second)
	require.True(t, engine.NavigateTo(testPageAbout, now))
	require.True(t, engine.NavigateTo(testPageProjects, now.Add(40*time.Millisecond)))

	// The original exit deadline stands; the superseded target never runs.
	engine.Update(now.Add(100 * time.Millisecond))
	assert.Equal(t, []string{"deactivate:0", "activate:2", "trigger:2"}, stage.calls)
	assert.Zero(t, stage.triggers[testPageAbout], "superseded target must never trigger")
	assert.Equal(t, testPageProjects, engine.Current())
}

func TestReturnToCurrentMidExitCancelsSwap(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageHome, now))
	engine.Update(now.Add(200 * time.Millisecond))
	stage.calls = nil

	now = now.Add(time.Second)
	require.True(t, engine.NavigateTo(testPageAbout, now))
	require.True(t, engine.NavigateTo(testPageHome, now.Add(40*time.Millisecond)))

	// The exit was cancelled: the page never deactivated, so nothing fires.
	engine.Update(now.Add(time.Second))
	assert.Empty(t, stage.calls)
	assert.Equal(t, TransitionIdle, engine.State())
	assert.Equal(t, testPageHome, engine.Current())
	assert.Zero(t, stage.triggers[testPageAbout])
}

func TestNavigateMidEnteringStartsFreshExit(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageHome, now))

	// Still entering when the next request lands.
	now = now.Add(50 * time.Millisecond)
	require.True(t, engine.NavigateTo(testPageAbout, now))
	assert.Equal(t, TransitionExiting, engine.State())

	engine.Update(now.Add(100 * time.Millisecond))
	assert.Equal(t, testPageAbout, engine.Current())
	assert.Equal(t, 1, stage.triggers[testPageAbout])
	assert.Equal(t, 1, stage.activeCount())
}

func TestRepeatRequestForPendingTargetKeepsDeadline(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageHome, now))
	engine.Update(now.Add(200 * time.Millisecond))

	now = now.Add(time.Second)
	require.True(t, engine.NavigateTo(testPageAbout, now))
	require.True(t, engine.NavigateTo(testPageAbout, now.Add(90*time.Millisecond)))

	// Had the second request restarted the exit, the swap would not have
	// happened yet at the original deadline.
	engine.Update(now.Add(100 * time.Millisecond))
	assert.Equal(t, testPageAbout, engine.Current())
	assert.Equal(t, 1, stage.triggers[testPageAbout])
}

func TestTargetVanishingMidExitKeepsCurrentPage(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout)
	engine := newTestEngine(stage)

	now := transitionEpoch
	require.True(t, engine.NavigateTo(testPageHome, now))
	engine.Update(now.Add(200 * time.Millisecond))
	stage.calls = nil

	now = now.Add(time.Second)
	require.True(t, engine.NavigateTo(testPageAbout, now))
	stage.pages[testPageAbout] = false

	engine.Update(now.Add(100 * time.Millisecond))
	assert.Empty(t, stage.calls, "current page must not deactivate when the target is gone")
	assert.Equal(t, testPageHome, engine.Current())

	engine.Update(now.Add(400 * time.Millisecond))
	assert.Equal(t, TransitionIdle, engine.State())
	assert.Equal(t, 1, stage.activeCount())
}

func TestAtMostOneActivePage(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout, testPageProjects)
	engine := newTestEngine(stage)

	now := transitionEpoch
	targets := []router.PageID{testPageHome, testPageAbout, testPageProjects, testPageHome}
	for _, target := range targets {
		engine.NavigateTo(target, now)
		for i := 0; i < 6; i++ {
			now = now.Add(60 * time.Millisecond)
			engine.Update(now)
			assert.LessOrEqual(t, stage.activeCount(), 1)
		}
	}
	assert.Equal(t, TransitionIdle, engine.State())
	assert.Equal(t, testPageHome, engine.Current())
}

func TestPhaseProgress(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout)
	engine := newTestEngine(stage)

	assert.Equal(t, 1.0, engine.PhaseProgress(transitionEpoch), "idle renders at rest")

	now := transitionEpoch
	engine.NavigateTo(testPageHome, now)
	assert.Equal(t, 0.0, engine.PhaseProgress(now))
	assert.InDelta(t, 0.5, engine.PhaseProgress(now.Add(100*time.Millisecond)), 0.001)
	assert.Equal(t, 1.0, engine.PhaseProgress(now.Add(time.Second)))
}

func TestCompletedCountsSettledSwaps(t *testing.T) {
	stage := newStageRecorder(testPageHome, testPageAbout)
	engine := newTestEngine(stage)

	now := transitionEpoch
	engine.NavigateTo(testPageHome, now)
	now = now.Add(300 * time.Millisecond)
	engine.Update(now)
	require.Equal(t, uint64(1), engine.Completed())

	engine.NavigateTo(testPageAbout, now)
	now = now.Add(150 * time.Millisecond)
	engine.Update(now)
	now = now.Add(250 * time.Millisecond)
	engine.Update(now)
	assert.Equal(t, uint64(2), engine.Completed())
}
