/*
Package dsl provides a fluent builder for constructing automata in code,
without a definition file. It is convenient in tests and embedded scenarios:

	a, err := dsl.New().
		Alphabet("a", "b").
		Initial("q0").
		Accept("q1").
		State("q0").On("a", "q1").Epsilon("q1").
		State("q1").On("b", "q0").
		Build()

Build funnels through the same domain validation as the file loaders, so a
builder cannot produce an invariant-breaking automaton.
*/
package dsl
