package folio

import (
	"time"
)

// Animation cadences. Every stepper below is a pure function of the time
// since its start, so the render loop just asks for the current value each
// frame and tests can probe any instant directly.
const (
	counterSteps = 50
	counterTick  = 30 * time.Millisecond

	typeCharInterval  = 90 * time.Millisecond
	eraseCharInterval = 45 * time.Millisecond
	typingHold        = 1200 * time.Millisecond
	typingGap         = 400 * time.Millisecond

	cursorBlinkInterval = 530 * time.Millisecond

	skillStagger      = 120 * time.Millisecond
	skillFillDuration = 700 * time.Millisecond

	cardStagger        = 90 * time.Millisecond
	cardRevealDuration = 450 * time.Millisecond
)

// counterAnim counts from zero to target in counterSteps equal increments,
// one per counterTick.
type counterAnim struct {
	target  int
	startAt time.Time
}

func newCounterAnim(target int, now time.Time) counterAnim {
	if target < 0 {
		target = 0
	}
	return counterAnim{target: target, startAt: now}
}

func (a counterAnim) Value(now time.Time) int {
	elapsed := now.Sub(a.startAt)
	if elapsed < 0 {
		return 0
	}
	step := int(elapsed / counterTick)
	if step >= counterSteps {
		return a.target
	}
	return a.target * step / counterSteps
}

func (a counterAnim) Done(now time.Time) bool {
	return now.Sub(a.startAt) >= counterSteps*counterTick
}

// typingAnim cycles through its phrases forever: type a phrase character by
// character, hold it, erase it faster, pause, then move to the next one.
type typingAnim struct {
	phrases []string
	startAt time.Time
}

func newTypingAnim(phrases []string, now time.Time) typingAnim {
	return typingAnim{phrases: phrases, startAt: now}
}

// phraseCycle is how long one phrase spends on screen from first character
// to fully erased.
func phraseCycle(phrase string) time.Duration {
	n := time.Duration(len([]rune(phrase)))
	return n*typeCharInterval + typingHold + n*eraseCharInterval + typingGap
}

// Text returns the visible portion of the current phrase.
func (a typingAnim) Text(now time.Time) string {
	if len(a.phrases) == 0 {
		return ""
	}

	elapsed := now.Sub(a.startAt)
	if elapsed < 0 {
		return ""
	}

	var total time.Duration
	for _, phrase := range a.phrases {
		total += phraseCycle(phrase)
	}
	if total <= 0 {
		return ""
	}
	elapsed = elapsed % total

	for _, phrase := range a.phrases {
		cycle := phraseCycle(phrase)
		if elapsed >= cycle {
			elapsed -= cycle
			continue
		}

		runes := []rune(phrase)
		n := time.Duration(len(runes))

		if elapsed < n*typeCharInterval {
			shown := int(elapsed/typeCharInterval) + 1
			return string(runes[:shown])
		}
		elapsed -= n * typeCharInterval

		if elapsed < typingHold {
			return phrase
		}
		elapsed -= typingHold

		if elapsed < n*eraseCharInterval {
			erased := int(elapsed/eraseCharInterval) + 1
			return string(runes[:len(runes)-erased])
		}
		return ""
	}
	return ""
}

// CursorVisible drives the blinking caret after the typed text.
func (a typingAnim) CursorVisible(now time.Time) bool {
	elapsed := now.Sub(a.startAt)
	if elapsed < 0 {
		return true
	}
	return (elapsed/cursorBlinkInterval)%2 == 0
}

// staggerAnim animates a list of items where item i starts delay*i after
// the animation begins and fills over duration. Skill bars and card
// reveals are both instances of this with different cadences.
type staggerAnim struct {
	startAt  time.Time
	delay    time.Duration
	duration time.Duration
}

func newStaggerAnim(now time.Time, delay, duration time.Duration) staggerAnim {
	return staggerAnim{startAt: now, delay: delay, duration: duration}
}

func newSkillAnim(now time.Time) staggerAnim {
	return newStaggerAnim(now, skillStagger, skillFillDuration)
}

func newRevealAnim(now time.Time) staggerAnim {
	return newStaggerAnim(now, cardStagger, cardRevealDuration)
}

// Progress reports item index's completion in [0, 1].
func (a staggerAnim) Progress(index int, now time.Time) float64 {
	elapsed := now.Sub(a.startAt) - time.Duration(index)*a.delay
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= a.duration {
		return 1
	}
	return float64(elapsed) / float64(a.duration)
}

// Done reports whether every one of count items has finished.
func (a staggerAnim) Done(count int, now time.Time) bool {
	if count == 0 {
		return true
	}
	return a.Progress(count-1, now) >= 1
}

// easeOutCubic maps linear progress to a fast-start, soft-landing curve.
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// revealOffset is the upward slide distance remaining for a card at the
// given progress, in pixels at reference scale.
func revealOffset(progress float64) int32 {
	const slideDistance = 24
	return int32((1 - easeOutCubic(progress)) * slideDistance)
}

// revealAlpha fades a card in with its slide.
func revealAlpha(progress float64) uint8 {
	return uint8(easeOutCubic(progress) * 255)
}
