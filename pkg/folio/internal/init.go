// Package internal contains the core infrastructure for the folio kiosk app.
// This includes SDL initialization, input processing, theming, fonts, and
// rendering utilities. Types and functions in this package are not part of
// the public API.
package internal
