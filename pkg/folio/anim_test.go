package folio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var animEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCounterAnimCountsUp(t *testing.T) {
	counter := newCounterAnim(100, animEpoch)

	assert.Equal(t, 0, counter.Value(animEpoch))
	assert.Equal(t, 0, counter.Value(animEpoch.Add(-time.Second)))

	// Half the steps in, half the target.
	half := animEpoch.Add(counterSteps / 2 * counterTick)
	assert.Equal(t, 50, counter.Value(half))

	end := animEpoch.Add(counterSteps * counterTick)
	assert.Equal(t, 100, counter.Value(end))
	assert.True(t, counter.Done(end))
	assert.False(t, counter.Done(half))

	// Value never overshoots the target.
	assert.Equal(t, 100, counter.Value(end.Add(time.Hour)))
}

func TestCounterAnimNegativeTarget(t *testing.T) {
	counter := newCounterAnim(-5, animEpoch)
	assert.Equal(t, 0, counter.Value(animEpoch.Add(time.Hour)))
}

func TestTypingAnimTypesHoldsAndErases(t *testing.T) {
	typing := newTypingAnim([]string{"Go"}, animEpoch)

	assert.Equal(t, "G", typing.Text(animEpoch))
	assert.Equal(t, "Go", typing.Text(animEpoch.Add(typeCharInterval)))

	// Holding at the full phrase.
	held := animEpoch.Add(2*typeCharInterval + typingHold/2)
	assert.Equal(t, "Go", typing.Text(held))

	// Erasing back down.
	erasing := animEpoch.Add(2*typeCharInterval + typingHold)
	assert.Equal(t, "G", typing.Text(erasing))
	assert.Equal(t, "", typing.Text(erasing.Add(eraseCharInterval)))
}

func TestTypingAnimCyclesThroughPhrases(t *testing.T) {
	typing := newTypingAnim([]string{"ab", "xyz"}, animEpoch)

	// Jump into the second phrase's typing segment.
	secondStart := animEpoch.Add(phraseCycle("ab"))
	assert.Equal(t, "x", typing.Text(secondStart))
	assert.Equal(t, "xyz", typing.Text(secondStart.Add(2*typeCharInterval)))

	// Wrapping around restarts the first phrase.
	wrapped := animEpoch.Add(phraseCycle("ab") + phraseCycle("xyz"))
	assert.Equal(t, "a", typing.Text(wrapped))
}

func TestTypingAnimEmptyPhrases(t *testing.T) {
	typing := newTypingAnim(nil, animEpoch)
	assert.Equal(t, "", typing.Text(animEpoch.Add(time.Second)))
}

func TestTypingAnimHandlesMultibyte(t *testing.T) {
	typing := newTypingAnim([]string{"héllo"}, animEpoch)
	assert.Equal(t, "h", typing.Text(animEpoch))
	assert.Equal(t, "hé", typing.Text(animEpoch.Add(typeCharInterval)))
}

func TestStaggerAnimProgress(t *testing.T) {
	anim := newStaggerAnim(animEpoch, 100*time.Millisecond, 400*time.Millisecond)

	// First item starts immediately, second is still waiting.
	early := animEpoch.Add(50 * time.Millisecond)
	assert.InDelta(t, 0.125, anim.Progress(0, early), 0.001)
	assert.Equal(t, 0.0, anim.Progress(1, early))

	// Each item eventually completes.
	late := animEpoch.Add(time.Second)
	assert.Equal(t, 1.0, anim.Progress(0, late))
	assert.Equal(t, 1.0, anim.Progress(5, late))

	assert.False(t, anim.Done(8, animEpoch.Add(200*time.Millisecond)))
	assert.True(t, anim.Done(8, animEpoch.Add(2*time.Second)))
	assert.True(t, anim.Done(0, animEpoch))
}

func TestRevealCurveEndpoints(t *testing.T) {
	assert.Equal(t, int32(24), revealOffset(0))
	assert.Equal(t, int32(0), revealOffset(1))
	assert.Equal(t, uint8(0), revealAlpha(0))
	assert.Equal(t, uint8(255), revealAlpha(1))

	// Ease-out front-loads the motion.
	assert.Greater(t, easeOutCubic(0.5), 0.5)
}
