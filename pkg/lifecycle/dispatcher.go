package lifecycle

// Listener is notified with the resulting state and side-effect request
// after every handled event, including ignored ones (which report the
// unchanged state and a none effect).
type Listener func(State, Effect)

// Dispatcher feeds events to a controller one at a time in FIFO order.
//
// Events raised from inside a listener — the usual case, since executing
// a side effect synchronously produces the follow-up event — are appended
// to the queue and processed after the current event completes. The
// controller therefore never observes two events interleaved
// mid-transition, matching the single-threaded cooperative model the
// whole editor runs under.
//
// Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	ctrl      *Controller
	queue     []Event
	running   bool
	listeners []Listener
}

// NewDispatcher creates a dispatcher driving ctrl.
func NewDispatcher(ctrl *Controller) *Dispatcher {
	return &Dispatcher{ctrl: ctrl}
}

// Subscribe registers a listener. Listeners are invoked in registration
// order after every handled event.
func (d *Dispatcher) Subscribe(l Listener) {
	d.listeners = append(d.listeners, l)
}

// Raise enqueues an event. If no event is currently being processed the
// queue is drained immediately; otherwise the event runs once the current
// one (and everything queued before it) completes.
func (d *Dispatcher) Raise(ev Event) {
	d.queue = append(d.queue, ev)
	if d.running {
		return
	}

	d.running = true
	defer func() { d.running = false }()

	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]

		state, effect := d.ctrl.Handle(next)
		for _, l := range d.listeners {
			l(state, effect)
		}
	}
}

// State returns the controller's current state.
func (d *Dispatcher) State() State { return d.ctrl.State() }
