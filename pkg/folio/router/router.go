package router

// PageID is a type-safe identifier for pages.
// Applications should define their own PageID constants using iota.
//
// Example:
//
//	const (
//	    PageHome PageID = iota
//	    PageAbout
//	    PageContact
//	)
type PageID int

// PageNone is returned when no page is associated with a lookup.
const PageNone PageID = -1

// Route associates a path with a page identifier.
type Route struct {
	Path   string
	PageID PageID
}

// Table is the immutable path-to-page mapping. Paths are unique keys and
// matching is exact: no prefix or pattern matching. Unknown paths, the empty
// path, and the bare root all resolve to the default route.
type Table struct {
	routes      map[string]PageID
	order       []Route
	defaultPath string
}

// NewTable creates a route table whose fallback is defaultPath. The default
// path must itself be registered before the table is used.
func NewTable(defaultPath string) *Table {
	return &Table{
		routes:      make(map[string]PageID),
		defaultPath: defaultPath,
	}
}

// Register adds a route. Registering the same path twice replaces the
// earlier page id. Registration order is preserved for Routes.
func (t *Table) Register(path string, id PageID) *Table {
	if _, exists := t.routes[path]; !exists {
		t.order = append(t.order, Route{Path: path, PageID: id})
	} else {
		for i := range t.order {
			if t.order[i].Path == path {
				t.order[i].PageID = id
				break
			}
		}
	}
	t.routes[path] = id
	return t
}

// Resolve maps a path to its page id and canonical path. The empty path and
// "/" resolve to the default route, as does any unregistered path. The
// canonical path is the registered path the result came from, so callers can
// compare it against nav link paths directly.
func (t *Table) Resolve(path string) (PageID, string) {
	if path == "" || path == "/" {
		path = t.defaultPath
	}

	if id, ok := t.routes[path]; ok {
		return id, path
	}

	if id, ok := t.routes[t.defaultPath]; ok {
		return id, t.defaultPath
	}

	return PageNone, t.defaultPath
}

// Lookup returns the page id registered for exactly this path, with no
// default fallback.
func (t *Table) Lookup(path string) (PageID, bool) {
	id, ok := t.routes[path]
	return id, ok
}

// Routes returns the registered routes in registration order. The returned
// slice is shared; callers must not modify it.
func (t *Table) Routes() []Route {
	return t.order
}

// DefaultPath returns the fallback path.
func (t *Table) DefaultPath() string {
	return t.defaultPath
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}
