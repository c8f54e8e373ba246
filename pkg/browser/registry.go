package browser

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/entrhq/browsermcp/pkg/logging"
)

// Registry owns the mapping from calling context to browser session. It
// creates sessions on first use, reuses them on later calls, and removes
// them on explicit close or shutdown. State is in-memory only, scoped to
// the process lifetime.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	pending   map[string]*pendingCreate
	connector Connector
	log       *logging.Logger
}

// pendingCreate tracks an in-flight session creation so concurrent Resolve
// calls for one context perform exactly one backend create.
type pendingCreate struct {
	done    chan struct{}
	session *Session
	err     error
}

// NewRegistry creates an empty session registry backed by the connector.
func NewRegistry(connector Connector, log *logging.Logger) *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		pending:   make(map[string]*pendingCreate),
		connector: connector,
		log:       log,
	}
}

// Resolve returns the session for a calling context, creating one through
// the connector if absent. Concurrent calls for the same context are
// serialized on the in-flight creation; calls for distinct contexts never
// block each other.
func (r *Registry) Resolve(ctx context.Context, contextID string) (*Session, error) {
	r.mu.Lock()
	if s, ok := r.sessions[contextID]; ok {
		r.mu.Unlock()
		return s, nil
	}

	if p, ok := r.pending[contextID]; ok {
		r.mu.Unlock()
		select {
		case <-p.done:
			if p.err != nil {
				return nil, p.err
			}
			return p.session, nil
		case <-ctx.Done():
			return nil, wrapContextErr(ctx.Err())
		}
	}

	p := &pendingCreate{done: make(chan struct{})}
	r.pending[contextID] = p
	r.mu.Unlock()

	driver, err := r.connector.Create(ctx)

	r.mu.Lock()
	delete(r.pending, contextID)
	if err != nil {
		p.err = err
		r.mu.Unlock()
		close(p.done)
		r.log.Errorf("Failed to create session for context %q: %v", contextID, err)
		return nil, err
	}

	s := newSession(contextID, driver)
	r.sessions[contextID] = s
	p.session = s
	r.mu.Unlock()
	close(p.done)

	r.log.Infof("Created browser session for context %q", contextID)
	return s, nil
}

// Close terminates the session for a calling context and removes it from
// the registry. Closing an absent context is a no-op. A failed backend
// teardown is logged, not surfaced; the entry is removed either way.
func (r *Registry) Close(ctx context.Context, contextID string) {
	r.mu.Lock()
	s, ok := r.sessions[contextID]
	if ok {
		delete(r.sessions, contextID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	if err := s.shutdown(ctx); err != nil {
		r.log.Warnf("Failed to close session for context %q: %v", contextID, err)
		return
	}
	r.log.Infof("Closed browser session for context %q", contextID)
}

// CloseAll drains the registry at shutdown. Every session is removed;
// individual teardown failures are logged and aggregated without stopping
// the drain.
func (r *Registry) CloseAll(ctx context.Context) error {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for contextID, s := range r.sessions {
		sessions = append(sessions, s)
		delete(r.sessions, contextID)
	}
	r.mu.Unlock()

	var errs *multierror.Error
	for _, s := range sessions {
		if err := s.shutdown(ctx); err != nil {
			r.log.Warnf("Failed to close session for context %q during drain: %v", s.ContextID(), err)
			errs = multierror.Append(errs, err)
		}
	}

	if len(sessions) > 0 {
		r.log.Infof("Drained %d browser session(s)", len(sessions))
	}
	return errs.ErrorOrNil()
}

// Count returns the number of open sessions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// SessionInfo is a point-in-time description of one open session.
type SessionInfo struct {
	ContextID  string
	CreatedAt  time.Time
	LastUsedAt time.Time
}

// Sessions reports every open session, mainly for the health endpoint.
func (r *Registry) Sessions() []SessionInfo {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	infos := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, SessionInfo{
			ContextID:  s.ContextID(),
			CreatedAt:  s.CreatedAt(),
			LastUsedAt: s.LastUsedAt(),
		})
	}
	return infos
}
