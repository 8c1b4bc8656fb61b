package rowan

import "fmt"

// Binding is one declarative rule mapping a set of raw keys to a named
// event with an optional scalar argument. An event name may appear in any
// number of bindings (fan-in: same event, different argument per key set)
// and a key may appear in any number of bindings (fan-out: one key fires
// several events).
type Binding struct {
	Event       string
	Arg         Value
	Keys        []Key
	Description string
}

// BoundEvent is one resolved (event, argument) pair for a key.
type BoundEvent struct {
	Event string
	Arg   Value
}

// Bindings is an ordered binding table. Declaration order is significant:
// when several bindings share an event name, the first one whose key set
// is satisfied wins, which is the deterministic tie-break for events with
// different arguments on simultaneously held keys.
type Bindings []Binding

// Validate checks the table's structural invariants: every binding names
// an event and carries at least one key.
func (b Bindings) Validate() error {
	for i, bind := range b {
		if bind.Event == "" {
			return fmt.Errorf("binding %d: empty event name", i)
		}
		if len(bind.Keys) == 0 {
			return fmt.Errorf("binding %d (%q): empty key set", i, bind.Event)
		}
	}
	return nil
}

// EventsForKey returns the (event, argument) pairs bound to k, in
// declaration order. A binding contributes at most one pair even if k
// appears in its key set more than once.
func (b Bindings) EventsForKey(k Key) []BoundEvent {
	var out []BoundEvent
	for _, bind := range b {
		for _, key := range bind.Keys {
			if key == k {
				out = append(out, BoundEvent{Event: bind.Event, Arg: bind.Arg})
				break
			}
		}
	}
	return out
}

// Held resolves a level query against the given key states: the first
// binding in declaration order whose name matches event and whose key set
// has at least one held key wins, and its argument is returned. Reports
// (false, Absent) when no binding matches.
func (b Bindings) Held(states map[Key]bool, event string) (bool, Value) {
	for _, bind := range b {
		if bind.Event != event {
			continue
		}
		for _, key := range bind.Keys {
			if states[key] {
				return true, bind.Arg
			}
		}
	}
	return false, Absent()
}

// Describe returns the first non-empty description declared for event, or
// a clearly marked placeholder when none is registered. It never fails.
func (b Bindings) Describe(event string) string {
	for _, bind := range b {
		if bind.Event == event && bind.Description != "" {
			return bind.Description
		}
	}
	return fmt.Sprintf("(no description: %s)", event)
}

// trackedKeys returns every key referenced by the table, deduplicated, in
// first-appearance order. The Dispatcher polls keys in this order.
func (b Bindings) trackedKeys() []Key {
	var out []Key
	seen := make(map[Key]bool)
	for _, bind := range b {
		for _, key := range bind.Keys {
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}
