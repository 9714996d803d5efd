package rule

// Result is the outcome of a single match attempt. Every rule produces
// one; matching never fails through an error value or a panic.
//
// On success, Position is the input position immediately past the last
// consumed element and Start is the position where the consumed span
// begins, so embedders can capture the matched subsequence without
// materializing a copy. On failure, Position rewinds to the position
// the attempt started at: no rule reports failure while having moved
// the position forward, and no rule reports success at a position
// earlier than its start.
type Result struct {
	Matched  bool // did the rule match?
	Position int  // past the last consumed element, or the rewind position
	Start    int  // where the consumed span begins
}

// Success creates a Result for a successful match consuming the
// elements of [start, position).
func Success(position, start int) Result {
	return Result{Matched: true, Position: position, Start: start}
}

// Failure creates a Result for a failed match attempt, rewound to the
// position at which the attempt started.
func Failure(at int) Result {
	return Result{Position: at, Start: at}
}

// Len returns the number of elements the match consumed. It is 0 for
// failed attempts and for non-consuming rules.
func (r Result) Len() int {
	if !r.Matched {
		return 0
	}
	return r.Position - r.Start
}
