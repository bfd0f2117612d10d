package discord

import (
	"sync"
	"time"

	"github.com/hollowedhq/seance/internal/session"
)

// liveSession pairs a controller with the surface it renders through so
// component handling can route notices back to the acting user.
type liveSession struct {
	controller *session.Controller
	surface    *messageSurface
}

// registry tracks live sessions by session ID. Sessions are fully
// independent; the registry only routes interactions to them.
type registry struct {
	mu       sync.Mutex
	sessions map[string]liveSession
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]liveSession)}
}

func (r *registry) add(id string, controller *session.Controller, surface *messageSurface) {
	r.mu.Lock()
	r.sessions[id] = liveSession{controller: controller, surface: surface}
	r.mu.Unlock()
}

func (r *registry) get(id string) (liveSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	live, ok := r.sessions[id]
	return live, ok
}

func (r *registry) remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// terminateAll shuts every live session down and waits up to the grace
// period for their cleanup to finish.
func (r *registry) terminateAll(grace time.Duration) {
	r.mu.Lock()
	controllers := make([]*session.Controller, 0, len(r.sessions))
	for _, live := range r.sessions {
		controllers = append(controllers, live.controller)
	}
	r.mu.Unlock()

	for _, controller := range controllers {
		controller.Terminate()
	}
	deadline := time.After(grace)
	for _, controller := range controllers {
		select {
		case <-controller.Done():
		case <-deadline:
			return
		}
	}
}
