/*
Package domain holds the core data model of Weft: finite automata over string
symbols, the canonical state-set representation used by NFA→DFA conversion,
and the verdict values produced by word simulation.

Automaton values are immutable after construction; every operation on them is
a pure function returning a newly built value.
*/
package domain
