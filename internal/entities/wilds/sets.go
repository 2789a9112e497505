package wilds

import "sort"

// FlagSet is an open-ended set of string tokens
type FlagSet map[string]bool

// NewFlagSet creates a set holding the given flags
func NewFlagSet(flags ...string) FlagSet {
	s := make(FlagSet, len(flags))
	for _, f := range flags {
		s[f] = true
	}
	return s
}

// Add inserts the flag and reports whether it was new
func (s FlagSet) Add(flag string) bool {
	if s[flag] {
		return false
	}
	s[flag] = true
	return true
}

// Remove deletes the flag
func (s FlagSet) Remove(flag string) {
	delete(s, flag)
}

// Has reports whether the flag is set
func (s FlagSet) Has(flag string) bool {
	return s[flag]
}

// Sorted returns the flags in lexical order
func (s FlagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for f, ok := range s {
		if ok {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// PositionSet is a set of map positions
type PositionSet map[string]Position

// NewPositionSet creates an empty set
func NewPositionSet() PositionSet {
	return make(PositionSet)
}

// Add inserts p and reports whether it was new
func (s PositionSet) Add(p Position) bool {
	if _, ok := s[p.Key()]; ok {
		return false
	}
	s[p.Key()] = p
	return true
}

// Has reports whether p is in the set
func (s PositionSet) Has(p Position) bool {
	_, ok := s[p.Key()]
	return ok
}

// EventHistory is the ordered list of resolved event ids.
// A unique id is recorded at most once.
type EventHistory struct {
	IDs  []string `json:"ids"`
	seen map[string]bool
}

func (h *EventHistory) index() map[string]bool {
	if h.seen == nil {
		h.seen = make(map[string]bool, len(h.IDs))
		for _, id := range h.IDs {
			h.seen[id] = true
		}
	}
	return h.seen
}

// Record appends id unless it is unique and already present.
// It returns false when nothing was appended.
func (h *EventHistory) Record(id string, unique bool) bool {
	seen := h.index()
	if unique && seen[id] {
		return false
	}
	h.IDs = append(h.IDs, id)
	seen[id] = true
	return true
}

// Has reports whether id was ever recorded
func (h *EventHistory) Has(id string) bool {
	return h.index()[id]
}

// Len returns the number of recorded entries
func (h *EventHistory) Len() int {
	return len(h.IDs)
}
