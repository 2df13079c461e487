package internal

// Layout metrics are authored against a 768px-tall reference display.
const referenceHeight = 768

// GetScaleFactor returns the ratio between the current window height and the
// reference height, used to scale fixed layout metrics on small panels.
func GetScaleFactor() float32 {
	w := GetWindow()
	if w == nil {
		return 1
	}
	h := w.GetHeight()
	if h <= 0 {
		return 1
	}
	return float32(h) / float32(referenceHeight)
}

// Scale32 multiplies a reference-resolution metric by the given scale factor.
// Callers grab the factor once per frame rather than per metric.
func Scale32(v int32, scale float32) int32 {
	return int32(float32(v) * scale)
}
