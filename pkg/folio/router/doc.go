// Package router provides path-based page resolution and navigation history.
//
// Table maps literal paths to page identifiers with exact-string matching
// and a designated default route; History records visited paths for back
// navigation. Both are plain data structures with no rendering or timing
// concerns, so navigation policy stays testable in isolation.
//
// # Basic Usage
//
//	// Define page identifiers as typed constants
//	const (
//	    PageHome router.PageID = iota
//	    PageAbout
//	    PageContact
//	)
//
//	table := router.NewTable("/").
//	    Register("/", PageHome).
//	    Register("/about", PageAbout).
//	    Register("/contact", PageContact)
//
//	id, path := table.Resolve("/about") // PageAbout, "/about"
//	id, path = table.Resolve("")        // PageHome, "/"
//	id, path = table.Resolve("/nope")   // PageHome, "/"
//
// # History
//
// The dispatcher owns the policy: on a recorded navigation that changes the
// displayed path it pushes the departed path, and the back action pops and
// renavigates without recording.
//
//	history := router.NewHistory()
//	history.Push("/")            // leaving home for /about
//	path, ok := history.Pop()    // back: ok, path == "/"
//
// Resolution never fails: unknown paths degrade to the default route rather
// than returning an error.
package router
