package router_test

import (
	"testing"

	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

const (
	pageHome router.PageID = iota
	pageAbout
	pageProjects
	pageServices
	pageTelegram
	pageContact
)

func newSiteTable() *router.Table {
	return router.NewTable("/").
		Register("/", pageHome).
		Register("/about", pageAbout).
		Register("/projects", pageProjects).
		Register("/services", pageServices).
		Register("/telegram", pageTelegram).
		Register("/contact", pageContact)
}

func TestResolveRegisteredPaths(t *testing.T) {
	table := newSiteTable()

	tests := []struct {
		path     string
		wantID   router.PageID
		wantPath string
	}{
		{"/", pageHome, "/"},
		{"/about", pageAbout, "/about"},
		{"/projects", pageProjects, "/projects"},
		{"/services", pageServices, "/services"},
		{"/telegram", pageTelegram, "/telegram"},
		{"/contact", pageContact, "/contact"},
	}

	for _, tt := range tests {
		id, path := table.Resolve(tt.path)
		if id != tt.wantID || path != tt.wantPath {
			t.Errorf("Resolve(%q) = (%d, %q), want (%d, %q)", tt.path, id, path, tt.wantID, tt.wantPath)
		}
	}
}

func TestResolveEmptyAndRootMatchDefault(t *testing.T) {
	table := newSiteTable()

	emptyID, emptyPath := table.Resolve("")
	rootID, rootPath := table.Resolve("/")

	if emptyID != rootID || emptyID != pageHome {
		t.Errorf("Resolve(\"\") = %d, Resolve(\"/\") = %d, want both %d", emptyID, rootID, pageHome)
	}
	if emptyPath != "/" || rootPath != "/" {
		t.Errorf("canonical paths = %q, %q, want both %q", emptyPath, rootPath, "/")
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	table := newSiteTable()

	for _, path := range []string{"/missing", "/about/", "/About", "about", "//"} {
		id, canonical := table.Resolve(path)
		if id != pageHome || canonical != "/" {
			t.Errorf("Resolve(%q) = (%d, %q), want default (%d, %q)", path, id, canonical, pageHome, "/")
		}
	}
}

func TestResolveIsStable(t *testing.T) {
	table := newSiteTable()

	for i := 0; i < 3; i++ {
		for _, route := range table.Routes() {
			id, _ := table.Resolve(route.Path)
			if id != route.PageID {
				t.Fatalf("pass %d: Resolve(%q) = %d, want %d", i, route.Path, id, route.PageID)
			}
		}
	}
}

func TestLookupHasNoFallback(t *testing.T) {
	table := newSiteTable()

	if _, ok := table.Lookup("/missing"); ok {
		t.Error("Lookup(\"/missing\") reported a match")
	}
	if id, ok := table.Lookup("/telegram"); !ok || id != pageTelegram {
		t.Errorf("Lookup(\"/telegram\") = (%d, %v), want (%d, true)", id, ok, pageTelegram)
	}
}

func TestRegisterReplacesAndKeepsOrder(t *testing.T) {
	table := router.NewTable("/").
		Register("/", pageHome).
		Register("/about", pageAbout).
		Register("/about", pageContact)

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	routes := table.Routes()
	if routes[0].Path != "/" || routes[1].Path != "/about" {
		t.Errorf("registration order = %q, %q", routes[0].Path, routes[1].Path)
	}
	if routes[1].PageID != pageContact {
		t.Errorf("re-registered page id = %d, want %d", routes[1].PageID, pageContact)
	}
}

func TestHistoryPushPop(t *testing.T) {
	history := router.NewHistory()

	if !history.IsEmpty() {
		t.Fatal("new history is not empty")
	}
	if _, ok := history.Pop(); ok {
		t.Fatal("Pop on empty history reported ok")
	}

	history.Push("/")
	history.Push("/about")
	history.Push("/projects")

	if history.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", history.Len())
	}
	if path, ok := history.Peek(); !ok || path != "/projects" {
		t.Errorf("Peek() = (%q, %v)", path, ok)
	}

	for _, want := range []string{"/projects", "/about", "/"} {
		path, ok := history.Pop()
		if !ok || path != want {
			t.Errorf("Pop() = (%q, %v), want (%q, true)", path, ok, want)
		}
	}

	if !history.IsEmpty() {
		t.Error("history not empty after popping everything")
	}
}

func TestHistoryClear(t *testing.T) {
	history := router.NewHistory()
	history.Push("/about")
	history.Push("/contact")
	history.Clear()

	if !history.IsEmpty() || history.Len() != 0 {
		t.Errorf("after Clear: IsEmpty=%v Len=%d", history.IsEmpty(), history.Len())
	}
}
