/*
Package ports defines the interfaces through which the engine talks to the
outside world: loaders that parse automaton definitions, and stores that keep
registered automata for the server. It also ships a reusable contract test so
every store backend proves the same behavior.
*/
package ports
