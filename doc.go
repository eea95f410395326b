/*
Package weft models finite automata (NFA/DFA) and provides two operations on
them: word-acceptance simulation and subset-construction conversion of an
epsilon-NFA into an equivalent DFA.

# Concept

An automaton is loaded from a declarative definition (a plain line format or
YAML), validated once at the boundary, and then treated as an immutable value.
The engine offers two pure computations over it:

  - Process: simulate a list of words, producing an ACCEPT / REJECT / INVALID
    verdict per word. The walk is first-match and non-backtracking, which is
    exact on DFAs; on raw NFAs it follows transition declaration order.
  - Convert: run the subset construction, producing a DFA whose states are
    named by the sorted, comma-joined sets of original states. Simulating on
    the converted DFA yields exact NFA acceptance.

Because every operation is a pure function over immutable inputs, a single
engine is safe for concurrent use without coordination.

# Usage

	eng := weft.New()

	automaton, err := eng.LoadFile("machine.txt")
	if err != nil {
		log.Fatal(err)
	}

	for _, res := range eng.Process(automaton, []string{"ab", "aab"}) {
		fmt.Printf("%s: %s\n", res.Word, res.Verdict)
	}

	dfa, err := eng.Convert(automaton)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(dfa.States))
*/
package weft
