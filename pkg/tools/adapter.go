package tools

import (
	"context"
	"net/url"
	"time"

	"github.com/entrhq/browsermcp/pkg/browser"
	"github.com/entrhq/browsermcp/pkg/logging"
)

// Adapter maps tool invocations onto browser sessions. One adapter serves
// every calling context; per-context state lives in the session registry.
type Adapter struct {
	registry *browser.Registry
	timeout  time.Duration
	log      *logging.Logger
}

// NewAdapter creates a tool adapter over the given registry. The timeout is
// the hard upper bound on a single tool call.
func NewAdapter(registry *browser.Registry, timeout time.Duration, log *logging.Logger) *Adapter {
	return &Adapter{
		registry: registry,
		timeout:  timeout,
		log:      log,
	}
}

// Registry returns the underlying session registry.
func (a *Adapter) Registry() *browser.Registry {
	return a.registry
}

// callContext bounds one tool call.
func (a *Adapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

// validateURL rejects malformed or non-HTTP URLs before any backend call.
func validateURL(raw string) error {
	if raw == "" {
		return browser.NewError(browser.KindInvalidArgument, "url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return browser.NewError(browser.KindInvalidArgument, "invalid url %q: %v", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return browser.NewError(browser.KindInvalidArgument, "url %q must use http or https (did you forget the protocol?)", raw)
	}
	if parsed.Host == "" {
		return browser.NewError(browser.KindInvalidArgument, "url %q has no host", raw)
	}
	return nil
}
