package domain

import (
	"sort"
	"strings"
)

// StateSet is an unordered set of state names. During NFA→DFA conversion a
// whole set of original states becomes a single state of the output automaton,
// identified by its canonical Name.
type StateSet map[string]bool

// NewStateSet builds a set from the given state names.
func NewStateSet(states ...string) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = true
	}
	return set
}

// Contains reports whether the state is a member of the set.
func (s StateSet) Contains(state string) bool {
	return s[state]
}

// Empty reports whether the set has no members.
func (s StateSet) Empty() bool {
	return len(s) == 0
}

// Name returns the canonical name of the set: member names sorted and joined
// with commas. Sorting before joining makes the name order-independent, so two
// explorations reaching the same underlying set produce the same name.
func (s StateSet) Name() string {
	names := make([]string, 0, len(s))
	for state := range s {
		names = append(names, state)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// Equal reports whether both sets have exactly the same members.
func (s StateSet) Equal(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for state := range s {
		if !other[state] {
			return false
		}
	}
	return true
}

// IntersectsAny reports whether the set shares at least one member with the
// given state names.
func (s StateSet) IntersectsAny(states []string) bool {
	for _, state := range states {
		if s[state] {
			return true
		}
	}
	return false
}
