package domain

import "errors"

// ErrNoStates is returned when an automaton is built with an empty state list.
var ErrNoStates = errors.New("automaton has no states")

// ErrReservedSymbol is returned when the declared alphabet contains the
// epsilon marker.
var ErrReservedSymbol = errors.New("alphabet contains reserved epsilon symbol")

// ErrUnknownInitial is returned when the initial state is not in the state list.
var ErrUnknownInitial = errors.New("invalid initial state")

// ErrUnknownAccepting is returned when an accepting state is not in the state list.
var ErrUnknownAccepting = errors.New("invalid accepting state")

// ErrUnknownTransitionState is returned when a transition references an origin
// or destination outside the state list.
var ErrUnknownTransitionState = errors.New("invalid state in transition")

// ErrUnknownTransitionSymbol is returned when a transition symbol is neither
// epsilon nor a declared alphabet symbol.
var ErrUnknownTransitionSymbol = errors.New("invalid symbol in transition")

// ErrAutomatonNotFound is returned when an automaton ID cannot be found in a store.
var ErrAutomatonNotFound = errors.New("automaton not found")
