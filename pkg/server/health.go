package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"

	"github.com/entrhq/browsermcp/pkg/browser"
)

// sessionHealth describes one open session in the /healthz payload.
type sessionHealth struct {
	Context    string    `json:"context"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// healthResponse is the /healthz payload.
type healthResponse struct {
	Status   string          `json:"status"`
	Sessions int             `json:"sessions"`
	Contexts []sessionHealth `json:"contexts"`
}

// healthHandler reports process liveness and the open sessions with their
// age and last activity.
func healthHandler(registry *browser.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos := registry.Sessions()
		sort.Slice(infos, func(i, j int) bool { return infos[i].ContextID < infos[j].ContextID })

		contexts := make([]sessionHealth, 0, len(infos))
		for _, info := range infos {
			contexts = append(contexts, sessionHealth{
				Context:    info.ContextID,
				CreatedAt:  info.CreatedAt,
				LastUsedAt: info.LastUsedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:   "ok",
			Sessions: len(contexts),
			Contexts: contexts,
		})
	}
}

// newHealthRouter builds the liveness router.
func newHealthRouter(registry *browser.Registry) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", healthHandler(registry)).Methods(http.MethodGet)
	return r
}

// startHealth runs the liveness endpoint on its own listener.
func (s *Server) startHealth() *http.Server {
	healthSrv := &http.Server{
		Addr:    s.cfg.HealthAddr,
		Handler: newHealthRouter(s.registry),
	}

	go func() {
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Warnf("Health endpoint failed: %v", err)
		}
	}()

	s.log.Infof("Health endpoint listening on %s", s.cfg.HealthAddr)
	return healthSrv
}

// stopHealth shuts the liveness endpoint down.
func (s *Server) stopHealth(healthSrv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = healthSrv.Shutdown(ctx)
}
