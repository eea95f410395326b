package ports

import "github.com/aretw0/weft/pkg/domain"

// AutomatonLoader parses a raw definition into a validated Automaton.
// Implementations own the textual format; every structural rule violation is
// surfaced as an error naming the rule, wrapping the domain sentinels where
// one applies. A loader never returns a partially valid automaton.
type AutomatonLoader interface {
	Load(data []byte) (*domain.Automaton, error)
}
