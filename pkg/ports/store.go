package ports

import (
	"context"

	"github.com/aretw0/weft/pkg/domain"
)

// AutomatonStore keeps registered automata for server mode. Implementations
// must return domain.ErrAutomatonNotFound for unknown IDs and must isolate
// stored values from later caller mutation.
type AutomatonStore interface {
	Save(ctx context.Context, id string, automaton *domain.Automaton) error
	Load(ctx context.Context, id string) (*domain.Automaton, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}
