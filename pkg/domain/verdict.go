package domain

// Verdict is the outcome of simulating one word. INVALID is a first-class
// outcome, not an error: a word containing symbols outside the alphabet can
// never be a member of the language, and simulation is not attempted for it.
type Verdict string

const (
	VerdictAccept  Verdict = "ACCEPT"
	VerdictReject  Verdict = "REJECT"
	VerdictInvalid Verdict = "INVALID"
)

// Result pairs a word with its verdict.
type Result struct {
	Word    string  `json:"word"`
	Verdict Verdict `json:"verdict"`
}

// Results is an ordered list of per-word results, one entry per input word in
// input order. Duplicate words produce duplicate entries.
type Results []Result

// Map flattens the results into a word→verdict lookup. When a word appears
// more than once the later verdict wins; since verdicts are a pure function
// of the word, the entries agree anyway.
func (r Results) Map() map[string]Verdict {
	m := make(map[string]Verdict, len(r))
	for _, res := range r {
		m[res.Word] = res.Verdict
	}
	return m
}
