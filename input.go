package rowan

// Source supplies raw input state to a Dispatcher once per tick.
// [EbitenSource] adapts ebiten; tests use an in-memory implementation.
type Source interface {
	// Down reports whether the key is currently held.
	Down(k Key) bool
	// JustPressed reports whether the key went down on this exact poll.
	// This is a one-shot signal from the input backend, not derived from
	// tracked level state; it is what non-repeating actions are built on.
	JustPressed(k Key) bool
}

// Transition is the direction of a key state change between two ticks.
type Transition uint8

const (
	TransitionNone    Transition = iota // state unchanged
	TransitionPress                     // released → pressed
	TransitionRelease                   // pressed → released
)

// EventFunc is invoked on a press or release edge with the resolved event
// name and the binding's argument.
type EventFunc func(event string, arg Value)

// Dispatcher owns the per-key held state and drives edge-triggered event
// dispatch from a binding table. It is single-threaded and tick-driven:
// all state mutation happens inside Tick, which must not be re-entered
// from a callback.
type Dispatcher struct {
	// OnPress and OnRelease fire exactly once per edge transition, once
	// per binding containing the transitioning key, in declaration order.
	// Either may be nil.
	OnPress   EventFunc
	OnRelease EventFunc

	bindings Bindings
	source   Source
	order    []Key // poll order: first appearance in the binding table
	states   map[Key]bool
	inTick   bool
}

// NewDispatcher builds a Dispatcher for the given binding table and input
// source. Every key referenced by the table is pre-seeded to released
// without dispatching, so the first tick cannot emit spurious release
// events.
func NewDispatcher(bindings Bindings, src Source) *Dispatcher {
	d := &Dispatcher{
		bindings: bindings,
		source:   src,
		order:    bindings.trackedKeys(),
		states:   make(map[Key]bool),
	}
	for _, k := range d.order {
		d.setSilent(k, false)
	}
	return d
}

// Bindings returns the dispatcher's binding table.
func (d *Dispatcher) Bindings() Bindings {
	return d.bindings
}

// setSilent stores a key state without edge comparison or dispatch.
// Used only for the pre-seed pass.
func (d *Dispatcher) setSilent(k Key, held bool) {
	d.states[k] = held
}

// update compares a polled state against the stored state. If unchanged
// it does nothing; otherwise it stores the new state and returns the
// transition direction.
func (d *Dispatcher) update(k Key, polled bool) Transition {
	if d.states[k] == polled {
		return TransitionNone
	}
	d.states[k] = polled
	if polled {
		return TransitionPress
	}
	return TransitionRelease
}

// Tick polls every tracked key once and fires OnPress/OnRelease for each
// edge transition. A panic raised inside one key's callbacks does not
// prevent the remaining keys in the same tick from being processed; the
// first panic is re-raised after the full pass. Tick panics immediately
// if called re-entrantly from a callback.
func (d *Dispatcher) Tick() {
	if d.inTick {
		panic("rowan: re-entrant Dispatcher.Tick")
	}
	d.inTick = true
	defer func() { d.inTick = false }()

	var deferred any
	for _, k := range d.order {
		d.tickKey(k, &deferred)
	}
	if deferred != nil {
		panic(deferred)
	}
}

// tickKey runs the edge state machine for one key, isolating callback
// panics so later keys still process.
func (d *Dispatcher) tickKey(k Key, deferred *any) {
	defer func() {
		if r := recover(); r != nil && *deferred == nil {
			*deferred = r
		}
	}()

	switch d.update(k, d.source.Down(k)) {
	case TransitionPress:
		if d.OnPress != nil {
			for _, be := range d.bindings.EventsForKey(k) {
				d.OnPress(be.Event, be.Arg)
			}
		}
	case TransitionRelease:
		if d.OnRelease != nil {
			for _, be := range d.bindings.EventsForKey(k) {
				d.OnRelease(be.Event, be.Arg)
			}
		}
	}
}

// KeyDown reports the tracked level state of a single raw key.
func (d *Dispatcher) KeyDown(k Key) bool {
	return d.states[k]
}

// Held is the level query: it reports whether any key bound to event is
// currently held, along with the argument of the first matching binding
// in declaration order. Usable at any point within or between ticks.
func (d *Dispatcher) Held(event string) (bool, Value) {
	return d.bindings.Held(d.states, event)
}

// JustPressed is the instant query: it reports whether a key bound to
// event was hit on this exact poll, along with the argument of the first
// matching binding in declaration order. The signal comes straight from
// the Source, independent of tracked level state, so it never repeats
// while a key stays held.
func (d *Dispatcher) JustPressed(event string) (bool, Value) {
	for _, bind := range d.bindings {
		if bind.Event != event {
			continue
		}
		for _, key := range bind.Keys {
			if d.source.JustPressed(key) {
				return true, bind.Arg
			}
		}
	}
	return false, Absent()
}
