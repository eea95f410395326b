package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAutomatonStoreContract runs a suite of tests verifying that an
// AutomatonStore implementation adheres to the interface contract.
func RunAutomatonStoreContract(t *testing.T, store AutomatonStore) {
	ctx := context.Background()
	id := "contract-test-" + time.Now().Format("20060102150405")

	automaton, err := domain.New(
		[]string{"q0", "q1"},
		[]string{"a"},
		[]domain.Transition{{From: "q0", Symbol: "a", To: "q1"}},
		"q0",
		[]string{"q1"},
	)
	require.NoError(t, err)

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, id, automaton)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, automaton.States, loaded.States)
		assert.Equal(t, automaton.Transitions, loaded.Transitions)
		assert.Equal(t, automaton.Initial, loaded.Initial)

		// The loaded value must be usable, not just structurally equal.
		assert.True(t, loaded.IsAccepting("q1"))
		assert.True(t, loaded.HasSymbol("a"))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, automaton))

		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound, "Load after Delete should return ErrAutomatonNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		_ = store.Save(ctx, id1, automaton)
		_ = store.Save(ctx, id2, automaton)

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
