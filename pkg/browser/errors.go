package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/tebeka/selenium"
)

// Kind identifies a failure category surfaced to the tool caller.
type Kind string

const (
	// KindInvalidArgument marks input rejected before any backend call.
	KindInvalidArgument Kind = "InvalidArgument"

	// KindBackendUnavailable marks connection, auth, or backend 5xx failures.
	KindBackendUnavailable Kind = "BackendUnavailable"

	// KindNavigationFailed marks a page load error or timeout.
	KindNavigationFailed Kind = "NavigationFailed"

	// KindElementNotFound marks a locator with no match within the
	// backend's implicit wait.
	KindElementNotFound Kind = "ElementNotFound"

	// KindElementNotInteractable marks an element the backend refused to
	// interact with.
	KindElementNotInteractable Kind = "ElementNotInteractable"

	// KindScriptError marks a backend-reported JavaScript failure.
	KindScriptError Kind = "ScriptError"

	// KindCaptureFailed marks a screenshot failure.
	KindCaptureFailed Kind = "CaptureFailed"

	// KindTimeout marks a tool call that exceeded the configured bound.
	KindTimeout Kind = "Timeout"

	// KindCanceled marks an operation abandoned because the caller
	// cancelled the request or the process is shutting down.
	KindCanceled Kind = "Canceled"

	// KindSessionClosed marks an operation that raced with close_browser
	// on the same calling context.
	KindSessionClosed Kind = "SessionClosedConcurrently"
)

// Error is a kind-tagged error carrying the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a kind-tagged error from a format string.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WrapError tags an existing error with a kind. Already-tagged errors are
// returned unchanged so the innermost classification wins.
func WrapError(kind Kind, err error) *Error {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of a tagged error, or "" for untagged errors.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// wrapContextErr tags a context error: deadline expiry is a Timeout,
// outright cancellation is Canceled.
func wrapContextErr(err error) *Error {
	if errors.Is(err, context.Canceled) {
		return WrapError(KindCanceled, err)
	}
	return WrapError(KindTimeout, err)
}

// classify maps a backend error to a kind using the W3C WebDriver error
// code when one is present, falling back to the operation's own kind.
func classify(err error, fallback Kind) *Error {
	var se *selenium.Error
	if errors.As(err, &se) {
		switch se.Err {
		case "no such element", "stale element reference":
			return WrapError(KindElementNotFound, err)
		case "element not interactable", "element click intercepted":
			return WrapError(KindElementNotInteractable, err)
		case "invalid selector":
			return WrapError(KindInvalidArgument, err)
		case "javascript error", "script timeout":
			return WrapError(KindScriptError, err)
		case "timeout":
			return WrapError(KindTimeout, err)
		case "invalid session id":
			return WrapError(KindSessionClosed, err)
		}
	}
	return WrapError(fallback, err)
}
