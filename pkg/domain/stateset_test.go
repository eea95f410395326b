package domain_test

import (
	"testing"

	"github.com/aretw0/weft/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestStateSet_NameIsOrderIndependent(t *testing.T) {
	a := domain.NewStateSet("q2", "q0", "q10")
	b := domain.NewStateSet("q0", "q10", "q2")

	assert.Equal(t, "q0,q10,q2", a.Name())
	assert.Equal(t, a.Name(), b.Name())
}

func TestStateSet_NameEmpty(t *testing.T) {
	assert.Equal(t, "", domain.NewStateSet().Name())
}

func TestStateSet_Equal(t *testing.T) {
	assert.True(t, domain.NewStateSet("a", "b").Equal(domain.NewStateSet("b", "a")))
	assert.False(t, domain.NewStateSet("a").Equal(domain.NewStateSet("a", "b")))
	assert.False(t, domain.NewStateSet("a", "c").Equal(domain.NewStateSet("a", "b")))
}

func TestStateSet_IntersectsAny(t *testing.T) {
	set := domain.NewStateSet("q0", "q2")

	assert.True(t, set.IntersectsAny([]string{"q2", "q5"}))
	assert.False(t, set.IntersectsAny([]string{"q1", "q3"}))
	assert.False(t, set.IntersectsAny(nil))
}
