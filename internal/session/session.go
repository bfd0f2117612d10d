// Package session owns the lifecycle of one interactive investigation.
//
// A controller holds exclusive write access to its journal and consumes a
// single event stream, so every accepted event is applied fully (mutate,
// deduce, render) before the next one is read. Sessions never share state
// with each other.
package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/hollowedhq/seance/internal/deduce"
	"github.com/hollowedhq/seance/internal/ghost"
	"github.com/hollowedhq/seance/internal/journal"
	apperrors "github.com/hollowedhq/seance/internal/platform/errors"
	"github.com/hollowedhq/seance/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrPermissionDenied indicates an actor outside the invite list or a
	// missing render capability.
	ErrPermissionDenied = apperrors.New(apperrors.CodeSessionPermissionDenied, "actor is not allowed to act on this session")
	// ErrNotActive indicates an event submitted after termination began.
	ErrNotActive = apperrors.New(apperrors.CodeSessionNotActive, "session is no longer active")
	// ErrSurfaceMissing indicates a controller constructed without a surface.
	ErrSurfaceMissing = apperrors.New(apperrors.CodeSessionSurfaceMissing, "session surface is not configured")
)

// capabilityDeniedMessage is surfaced when the bot cannot render to the
// requested channel.
const capabilityDeniedMessage = "I can't post the investigation board in this channel."

// State is the lifecycle state of a session.
type State int

const (
	// StateInitializing covers the asynchronous setup window.
	StateInitializing State = iota
	// StateActive indicates the session accepts events.
	StateActive
	// StateTerminated is terminal; there is no transition out.
	StateTerminated
)

// Label returns the string label for a state.
func (s State) Label() string {
	switch s {
	case StateInitializing:
		return "INITIALIZING"
	case StateActive:
		return "ACTIVE"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNSPECIFIED"
	}
}

// EventKind identifies an inbound interaction event.
type EventKind int

const (
	// EventUnspecified represents an invalid event kind.
	EventUnspecified EventKind = iota
	// EventToggleEvidence cycles one evidence mark.
	EventToggleEvidence
	// EventSetLimit overwrites the evidence limit.
	EventSetLimit
)

// Label returns the string label for an event kind.
func (k EventKind) Label() string {
	switch k {
	case EventToggleEvidence:
		return "TOGGLE_EVIDENCE"
	case EventSetLimit:
		return "SET_LIMIT"
	default:
		return "UNSPECIFIED"
	}
}

// Event is one inbound interaction against a session.
type Event struct {
	Kind     EventKind
	Actor    string
	Evidence ghost.Evidence
	Limit    int
}

// View is the render payload pushed to the surface after every accepted
// mutation.
type View struct {
	Candidates []string
	Marks      map[ghost.Evidence]journal.Mark
	Limit      int
}

// NoneRemaining reports whether no catalog ghost matches the journal.
func (v View) NoneRemaining() bool {
	return len(v.Candidates) == 0
}

// Surface is the rendering boundary a session pushes through. Adapters
// implement it against the chat platform.
type Surface interface {
	// Render redraws the investigation board.
	Render(ctx context.Context, view View) error
	// Notify delivers a private notice to one actor.
	Notify(ctx context.Context, actorID, message string) error
	// Delete removes the investigation board. Failures are tolerated.
	Delete(ctx context.Context) error
}

// Options configures a new session controller.
type Options struct {
	ID          string
	Invoker     string
	Invitees    []string
	IdleTimeout time.Duration
	Surface     Surface
	// CanRender checks the platform capability to post to the requested
	// surface before any resource is acquired.
	CanRender func(context.Context) bool
}

// Controller drives one session from construction to termination. It is
// the sole owner of its journal.
type Controller struct {
	id      string
	surface Surface
	allowed map[string]struct{}
	journal *journal.Journal
	catalog []ghost.Ghost
	idle    time.Duration
	tracer  trace.Tracer

	events   chan Event
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	mu    sync.Mutex
	state State
}

// Start validates options, performs the permission precheck, renders the
// initial board and transitions the controller to active. On capability
// failure it surfaces a denial notice and returns without acquiring any
// resource.
func Start(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Surface == nil {
		return nil, ErrSurfaceMissing
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = timeouts.SessionIdle
	}

	c := &Controller{
		id:      strings.TrimSpace(opts.ID),
		surface: opts.Surface,
		allowed: allowList(opts.Invoker, opts.Invitees),
		journal: journal.New(),
		catalog: ghost.Catalog(),
		idle:    opts.IdleTimeout,
		tracer:  otel.Tracer("seance/session"),
		events:  make(chan Event),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		state:   StateInitializing,
	}

	if opts.CanRender != nil && !opts.CanRender(ctx) {
		c.setState(StateTerminated)
		close(c.done)
		c.notify(ctx, opts.Invoker, capabilityDeniedMessage)
		return nil, ErrPermissionDenied
	}

	if err := c.render(ctx); err != nil {
		c.setState(StateTerminated)
		close(c.done)
		return nil, apperrors.Wrap(apperrors.CodeSessionRenderFailed, "render initial board", err)
	}

	c.setState(StateActive)
	go c.run(ctx)
	return c, nil
}

// allowList builds the set of actors permitted to act on the session.
func allowList(invoker string, invitees []string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(invitees)+1)
	if invoker = strings.TrimSpace(invoker); invoker != "" {
		allowed[invoker] = struct{}{}
	}
	for _, invitee := range invitees {
		if invitee = strings.TrimSpace(invitee); invitee != "" {
			allowed[invitee] = struct{}{}
		}
	}
	return allowed
}

// ID returns the session identifier.
func (c *Controller) ID() string {
	return c.id
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

// Done is closed once termination has completed.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Submit hands an event to the session. It blocks until the controller
// accepts the event or termination begins; events submitted after that
// are discarded with ErrNotActive.
func (c *Controller) Submit(event Event) error {
	select {
	case c.events <- event:
		return nil
	case <-c.done:
		return ErrNotActive
	}
}

// Terminate requests session shutdown. It is idempotent and safe to call
// concurrently with idle expiry or in-flight events.
func (c *Controller) Terminate() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// run serializes all events for this session on one goroutine.
func (c *Controller) run(ctx context.Context) {
	timer := time.NewTimer(c.idle)
	defer c.finish(timer)
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case <-timer.C:
			log.Printf("session idle expired session_id=%s idle=%s", c.id, c.idle)
			return
		case event := <-c.events:
			if !c.handle(ctx, event, timer) {
				return
			}
		}
	}
}

// handle applies one event. It reports false when the session must
// terminate.
func (c *Controller) handle(ctx context.Context, event Event, timer *time.Timer) bool {
	ctx, span := c.tracer.Start(ctx, "session.handle_event", trace.WithAttributes(
		attribute.String("session.id", c.id),
		attribute.String("session.event_kind", event.Kind.Label()),
	))
	defer span.End()

	if _, ok := c.allowed[event.Actor]; !ok {
		// Rejected events mutate nothing and do not refresh the deadline.
		c.notify(ctx, event.Actor, apperrors.CodeSessionPermissionDenied.UserMessage())
		return true
	}

	var err error
	switch event.Kind {
	case EventToggleEvidence:
		_, err = c.journal.Cycle(event.Evidence)
	case EventSetLimit:
		err = c.journal.SetLimit(event.Limit)
	default:
		err = apperrors.New(apperrors.CodeUnknown, "unsupported event kind")
	}
	if err != nil {
		log.Printf("session event rejected session_id=%s actor=%s kind=%s err=%v", c.id, event.Actor, event.Kind.Label(), err)
		c.notify(ctx, event.Actor, apperrors.GetCode(err).UserMessage())
		return true
	}

	if err := c.render(ctx); err != nil {
		log.Printf("session render failed session_id=%s err=%v", c.id, err)
		return false
	}

	c.resetIdle(timer)
	return true
}

// render recomputes the candidate list and redraws the board.
func (c *Controller) render(ctx context.Context) error {
	view := View{
		Candidates: deduce.PossibleGhosts(c.journal, c.catalog),
		Marks:      c.journal.Marks(),
		Limit:      c.journal.Limit(),
	}
	callCtx, cancel := context.WithTimeout(ctx, timeouts.SurfaceCall)
	defer cancel()
	return c.surface.Render(callCtx, view)
}

// notify delivers a private notice; delivery failures are logged only.
func (c *Controller) notify(ctx context.Context, actorID, message string) {
	callCtx, cancel := context.WithTimeout(ctx, timeouts.SurfaceCall)
	defer cancel()
	if err := c.surface.Notify(callCtx, actorID, message); err != nil {
		log.Printf("session notify failed session_id=%s actor=%s err=%v", c.id, actorID, err)
	}
}

// resetIdle rearms the idle deadline after an accepted event.
func (c *Controller) resetIdle(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(c.idle)
}

// finish runs exactly once when the event loop exits. Surface cleanup is
// best effort: a failed delete never blocks or fails termination.
func (c *Controller) finish(timer *time.Timer) {
	timer.Stop()
	c.setState(StateTerminated)
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.SurfaceCall)
	defer cancel()
	if err := c.surface.Delete(ctx); err != nil {
		log.Printf("session cleanup failed session_id=%s err=%v", c.id, err)
	}
	close(c.done)
}
