package folio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsSnapshot(t *testing.T) {
	var stats SessionStats
	stats.Navigations.Add(3)
	stats.Transitions.Add(2)
	stats.CountVisit("/about")

	snapshot := stats.Snapshot()
	assert.Equal(t, []interface{}{
		"navigations", int64(3),
		"transitions", int64(2),
		"form_submits", int64(0),
		"content_loads", int64(0),
		"visits", map[string]int64{"/about": 1},
	}, snapshot)

	stats.Reset()
	assert.Equal(t, int64(0), stats.Navigations.Load())
	assert.Empty(t, stats.Visits())
}

func TestStatsMostVisited(t *testing.T) {
	var stats SessionStats

	path, count := stats.MostVisited()
	assert.Equal(t, "", path)
	assert.Equal(t, int64(0), count)

	stats.CountVisit("/projects")
	stats.CountVisit("/projects")
	stats.CountVisit("/about")

	path, count = stats.MostVisited()
	assert.Equal(t, "/projects", path)
	assert.Equal(t, int64(2), count)

	// Ties resolve to the lexically smaller path.
	stats.CountVisit("/about")
	path, _ = stats.MostVisited()
	assert.Equal(t, "/about", path)
}

func TestStatsConcurrentIncrements(t *testing.T) {
	var stats SessionStats
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				stats.Navigations.Inc()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), stats.Navigations.Load())
}
