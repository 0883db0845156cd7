package event

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for the given types
type HandlerFunc struct {
	Types []EventType
	Fn    func(ev GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Router dispatches events from a queue to registered handlers
//
//   - Single-threaded dispatch, handlers run on the caller's goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll() int {
	return r.queue.Drain(r.dispatch)
}

func (r *Router) dispatch(ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
