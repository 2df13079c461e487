package router

// History is the navigation history stack, standing in for the browser
// history of a web app. The dispatcher pushes the departed path on recorded
// navigations; the back action pops.
type History struct {
	paths []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		paths: make([]string, 0),
	}
}

// Push records a path.
func (h *History) Push(path string) {
	h.paths = append(h.paths, path)
}

// Pop removes and returns the most recent path.
// Returns ("", false) if the history is empty.
func (h *History) Pop() (string, bool) {
	if len(h.paths) == 0 {
		return "", false
	}
	path := h.paths[len(h.paths)-1]
	h.paths = h.paths[:len(h.paths)-1]
	return path, true
}

// Peek returns the most recent path without removing it.
// Returns ("", false) if the history is empty.
func (h *History) Peek() (string, bool) {
	if len(h.paths) == 0 {
		return "", false
	}
	return h.paths[len(h.paths)-1], true
}

// IsEmpty returns true if the history has no entries.
func (h *History) IsEmpty() bool {
	return len(h.paths) == 0
}

// Len returns the number of recorded paths.
func (h *History) Len() int {
	return len(h.paths)
}

// Clear removes all recorded paths.
func (h *History) Clear() {
	h.paths = h.paths[:0]
}
