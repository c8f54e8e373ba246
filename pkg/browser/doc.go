// Package browser manages WebDriver sessions on a remote browserless
// backend.
//
// The package is built around three core concepts:
//
//  1. Connector: dials the backend's WebDriver endpoint and provisions a
//     new browser instance per session
//  2. Session: binds one backend driver to one calling context and
//     serializes its operations
//  3. Registry: the owned mapping from calling context to Session, with
//     create-on-first-use, explicit close, and shutdown drain
//
// # Session Lifecycle
//
// Sessions follow this lifecycle:
//
//  1. Create: the first tool call for a calling context resolves a session
//     through the Registry, which provisions a browser on the backend
//  2. Use: every later call for that context reuses the same session
//  3. Close: the close_browser tool releases the session; closing twice is
//     a no-op
//  4. Drain: process shutdown closes every remaining session, best-effort
//
// At most one session exists per calling context at any time. Concurrent
// resolution for the same context performs exactly one backend create;
// contexts never share sessions or block each other.
//
// # Errors
//
// Every failure surfaces as a kind-tagged Error (BackendUnavailable,
// ElementNotFound, Timeout, and so on) wrapping the underlying cause.
// W3C WebDriver error codes from the backend are mapped onto kinds; an
// operation without a backend code falls back to its own kind.
package browser
