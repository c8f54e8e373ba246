package browser

import (
	"context"
	"sync"
	"time"
)

// Session binds one backend driver to one calling context. Sessions are
// owned exclusively by the Registry; callers obtain them through Resolve
// and never hold them across a close.
//
// WebDriver sessions are not safe under interleaved commands, so every
// backend operation takes exclusive ownership of the driver for its
// duration. Operations for distinct contexts proceed fully in parallel.
type Session struct {
	contextID string
	createdAt time.Time

	// sem is the single-owner guard on the driver. Ownership is a
	// 1-buffered channel rather than a mutex so that callers queued
	// behind a stuck backend round-trip give up at their own deadline.
	sem chan struct{}

	mu         sync.Mutex
	driver     Driver
	closed     bool
	lastUsedAt time.Time
	currentURL string
}

func newSession(contextID string, driver Driver) *Session {
	now := time.Now()
	return &Session{
		contextID:  contextID,
		createdAt:  now,
		sem:        make(chan struct{}, 1),
		driver:     driver,
		lastUsedAt: now,
	}
}

// ContextID returns the calling context this session is bound to.
func (s *Session) ContextID() string {
	return s.contextID
}

// CreatedAt returns the session creation time.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// LastUsedAt returns the time of the last backend operation.
func (s *Session) LastUsedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsedAt
}

// CurrentURL returns the last URL this session navigated to.
func (s *Session) CurrentURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentURL
}

func (s *Session) setCurrentURL(url string) {
	s.mu.Lock()
	s.currentURL = url
	s.mu.Unlock()
}

// acquire takes exclusive ownership of the driver, giving up when ctx
// expires.
func (s *Session) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return wrapContextErr(ctx.Err())
	}
}

func (s *Session) release() {
	<-s.sem
}

// await runs fn on its own goroutine and waits for completion or context
// expiry. The backend round-trip cannot be aborted mid-flight, so on expiry
// the call is abandoned and a Timeout (or Canceled) error surfaces to the
// caller.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		v, err := fn()
		done <- outcome{value: v, err: err}
	}()

	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		return zero, wrapContextErr(ctx.Err())
	}
}

// run executes one backend operation with exclusive ownership of the
// driver. Ownership is released by the worker goroutine once the backend
// call finishes, so a timed-out caller returns early while the session
// stays single-owner, and later callers honor their own deadlines instead
// of inheriting a stuck round-trip's stall. An operation arriving after
// close_browser observes the closed flag and fails with
// SessionClosedConcurrently instead of racing a dead driver.
func run[T any](ctx context.Context, s *Session, fallback Kind, fn func(Driver) (T, error)) (T, error) {
	var zero T

	if err := s.acquire(ctx); err != nil {
		return zero, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.release()
		return zero, NewError(KindSessionClosed, "browser session for context %q was closed", s.contextID)
	}
	driver := s.driver
	s.mu.Unlock()

	v, err := await(ctx, func() (T, error) {
		defer s.release()
		v, err := fn(driver)
		s.mu.Lock()
		s.lastUsedAt = time.Now()
		s.mu.Unlock()
		return v, err
	})
	if err != nil {
		return zero, classify(err, fallback)
	}
	return v, nil
}

// Navigate loads a URL and waits for the document body, returning the
// resulting page state.
func (s *Session) Navigate(ctx context.Context, url string) (PageState, error) {
	return run(ctx, s, KindNavigationFailed, func(d Driver) (PageState, error) {
		if err := d.Get(url); err != nil {
			return PageState{}, err
		}

		// The implicit wait makes this block until the page has a body,
		// mirroring an explicit wait for document readiness.
		if _, err := d.FindElement(StrategyTagName.Locator(), "body"); err != nil {
			return PageState{}, err
		}

		title, err := d.Title()
		if err != nil {
			return PageState{}, err
		}
		current, err := d.CurrentURL()
		if err != nil {
			return PageState{}, err
		}

		s.setCurrentURL(current)
		return PageState{URL: current, Title: title}, nil
	})
}

// FindElement locates the first element matching the selector and reports
// its tag, text, common attributes, location, and size.
func (s *Session) FindElement(ctx context.Context, strategy Strategy, selector string) (ElementInfo, error) {
	return run(ctx, s, KindElementNotFound, func(d Driver) (ElementInfo, error) {
		el, err := d.FindElement(strategy.Locator(), selector)
		if err != nil {
			return ElementInfo{}, err
		}

		tag, err := el.TagName()
		if err != nil {
			return ElementInfo{}, err
		}
		text, err := el.Text()
		if err != nil {
			return ElementInfo{}, err
		}
		location, err := el.Location()
		if err != nil {
			return ElementInfo{}, err
		}
		size, err := el.Size()
		if err != nil {
			return ElementInfo{}, err
		}

		attrs := make(map[string]string)
		for _, name := range attributeNames {
			if value, attrErr := el.GetAttribute(name); attrErr == nil && value != "" {
				attrs[name] = value
			}
		}

		return ElementInfo{
			TagName:    tag,
			Text:       text,
			Attributes: attrs,
			Location:   location,
			Size:       size,
		}, nil
	})
}

// Click locates an element, clicks it, and returns the page state after the
// click settles.
func (s *Session) Click(ctx context.Context, strategy Strategy, selector string) (PageState, error) {
	return run(ctx, s, KindElementNotFound, func(d Driver) (PageState, error) {
		el, err := d.FindElement(strategy.Locator(), selector)
		if err != nil {
			return PageState{}, err
		}
		if err := el.Click(); err != nil {
			return PageState{}, err
		}

		// A click may trigger navigation; wait for the new document body.
		if _, err := d.FindElement(StrategyTagName.Locator(), "body"); err != nil {
			return PageState{}, err
		}

		title, err := d.Title()
		if err != nil {
			return PageState{}, err
		}
		current, err := d.CurrentURL()
		if err != nil {
			return PageState{}, err
		}

		s.setCurrentURL(current)
		return PageState{URL: current, Title: title}, nil
	})
}

// ExecuteScript runs JavaScript in the page context and returns its value.
func (s *Session) ExecuteScript(ctx context.Context, script string, args []interface{}) (interface{}, error) {
	return run(ctx, s, KindScriptError, func(d Driver) (interface{}, error) {
		if args == nil {
			args = []interface{}{}
		}
		return d.ExecuteScript(script, args)
	})
}

// Screenshot captures the current page as PNG bytes.
func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	return run(ctx, s, KindCaptureFailed, func(d Driver) ([]byte, error) {
		return d.Screenshot()
	})
}

// PageInfo reports the current page's title, URL, source length, and window
// handle.
func (s *Session) PageInfo(ctx context.Context) (PageDetails, error) {
	return run(ctx, s, KindBackendUnavailable, func(d Driver) (PageDetails, error) {
		title, err := d.Title()
		if err != nil {
			return PageDetails{}, err
		}
		current, err := d.CurrentURL()
		if err != nil {
			return PageDetails{}, err
		}
		source, err := d.PageSource()
		if err != nil {
			return PageDetails{}, err
		}
		handle, err := d.CurrentWindowHandle()
		if err != nil {
			return PageDetails{}, err
		}

		return PageDetails{
			URL:          current,
			Title:        title,
			SourceLength: len(source),
			WindowHandle: handle,
		}, nil
	})
}

// Source returns the HTML source of the current page.
func (s *Session) Source(ctx context.Context) (string, error) {
	return run(ctx, s, KindBackendUnavailable, func(d Driver) (string, error) {
		return d.PageSource()
	})
}

// shutdown marks the session closed and releases the backend driver. Only
// the Registry calls this; later operations fail with
// SessionClosedConcurrently. The wait for driver ownership honors ctx so a
// bounded drain finishes on time even when a backend call is stuck; the
// driver is then quit in the background once the stuck call returns, so the
// backend browser is not leaked.
func (s *Session) shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	driver := s.driver
	s.mu.Unlock()

	if err := s.acquire(ctx); err != nil {
		go func() {
			_ = s.acquire(context.Background())
			defer s.release()
			_ = driver.Quit()
		}()
		return err
	}
	defer s.release()

	_, err := await(ctx, func() (struct{}, error) {
		return struct{}{}, driver.Quit()
	})
	return err
}
