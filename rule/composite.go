package rule

import "math"

// Composite combinators: rules built by combining one or more
// sub-rules. Sub-rules are owned by value; the resulting expression
// tree is never mutated after construction.

// Unbounded is the sentinel for "no upper bound" in repetition and
// predicate-run rules.
const Unbounded = math.MaxInt

func checkBounds(who string, min, max int) {
	if min < 0 {
		panic(who + ": negative minimum occurrence")
	}
	if max < min {
		panic(who + ": maximum occurrence below minimum")
	}
}

// --- Sequence ----------------------------------------------------------

type seqRule[T any] struct {
	rules []Rule[T]
}

// Seq creates a rule that matches its sub-rules one after another,
// each continuing at the position the previous one ended at. It
// succeeds iff all sub-rules succeed; on failure the position rewinds
// to the sequence's own start.
func Seq[T any](rules ...Rule[T]) Rule[T] {
	if len(rules) == 0 {
		return Empty[T]()
	}
	return seqRule[T]{rules: rules}
}

func (r seqRule[T]) Match(input []T, at int) Result {
	pos := at
	for _, sub := range r.rules {
		res := sub.Match(input, pos)
		if !res.Matched {
			return Failure(at)
		}
		pos = res.Position
	}
	return Success(pos, at)
}

// --- Ordered choice ----------------------------------------------------

type orRule[T any] struct {
	rules []Rule[T]
}

// Or creates a rule with ordered-choice semantics: alternatives are
// tried left to right from the same start position and the first
// success wins. Later alternatives are not evaluated once one has
// matched; there is no combinatorial exploration.
func Or[T any](rules ...Rule[T]) Rule[T] {
	if len(rules) == 0 {
		panic("rule.Or: no alternatives")
	}
	return orRule[T]{rules: rules}
}

func (r orRule[T]) Match(input []T, at int) Result {
	for _, sub := range r.rules {
		res := sub.Match(input, at)
		if res.Matched {
			return Success(res.Position, at)
		}
	}
	return Failure(at)
}

// --- Negation ----------------------------------------------------------

type notRule[T any] struct {
	inner Rule[T]
}

// Not creates a rule that succeeds iff the wrapped rule fails at the
// current position. It never consumes input, regardless of outcome.
func Not[T any](inner Rule[T]) Rule[T] {
	return notRule[T]{inner: inner}
}

func (r notRule[T]) Match(input []T, at int) Result {
	if r.inner.Match(input, at).Matched {
		return Failure(at)
	}
	return Success(at, at)
}

// --- Optional ----------------------------------------------------------

type optRule[T any] struct {
	inner Rule[T]
}

// Opt creates a rule equivalent to the wrapped rule or the empty
// match: it always succeeds, consuming input iff the wrapped rule
// matched.
func Opt[T any](inner Rule[T]) Rule[T] {
	return optRule[T]{inner: inner}
}

func (r optRule[T]) Match(input []T, at int) Result {
	if res := r.inner.Match(input, at); res.Matched {
		return Success(res.Position, at)
	}
	return Success(at, at)
}

// --- Exclusive or ------------------------------------------------------

type xorRule[T any] struct {
	a, b Rule[T]
}

// Xor creates a rule that succeeds iff exactly one of the two
// sub-rules matches at the current position; both-match and
// neither-match are failures. Both sub-rules are always evaluated
// (exclusivity is undecidable otherwise), so capture side effects of
// both apply even when the combination fails.
func Xor[T any](a, b Rule[T]) Rule[T] {
	return xorRule[T]{a: a, b: b}
}

func (r xorRule[T]) Match(input []T, at int) Result {
	ra := r.a.Match(input, at)
	rb := r.b.Match(input, at)
	if ra.Matched == rb.Matched {
		return Failure(at)
	}
	if ra.Matched {
		return Success(ra.Position, at)
	}
	return Success(rb.Position, at)
}

// --- Repetition --------------------------------------------------------

type manyRule[T any] struct {
	inner    Rule[T]
	sep      Rule[T]
	min, max int
}

// Many creates a rule that greedily matches the wrapped rule between
// min and max times. Pass Unbounded for no upper bound.
func Many[T any](inner Rule[T], min, max int) Rule[T] {
	return ManySep(inner, Empty[T](), min, max)
}

// ManySep creates a rule that greedily matches the wrapped rule,
// interleaved with a separator rule between repetitions, for at least
// min and at most max occurrences. Pass Unbounded for no upper bound.
// Matching stops at max occurrences and succeeds iff at least min were
// observed; on failure the position rewinds to the repetition's start.
//
// A repetition that matches without consuming input is counted once
// and terminates the loop, so zero-width rules cannot repeat forever.
func ManySep[T any](inner, sep Rule[T], min, max int) Rule[T] {
	if inner == nil || sep == nil {
		panic("rule.ManySep: nil sub-rule")
	}
	checkBounds("rule.ManySep", min, max)
	return manyRule[T]{inner: inner, sep: sep, min: min, max: max}
}

func (r manyRule[T]) Match(input []T, at int) Result {
	pos, count := at, 0
	for count < r.max {
		probe := pos
		if count > 0 {
			sres := r.sep.Match(input, probe)
			if !sres.Matched {
				break
			}
			probe = sres.Position
		}
		ires := r.inner.Match(input, probe)
		if !ires.Matched {
			break
		}
		count++
		if ires.Position == pos { // zero-width repetition, see above
			tracer().Debugf("repetition consumed no input; stopping after %d occurrence(s)", count)
			break
		}
		pos = ires.Position
	}
	if count < r.min {
		return Failure(at)
	}
	return Success(pos, at)
}

// SepBy creates a rule matching one or more occurrences of inner,
// separated by sep. It is shorthand for ManySep(inner, sep, 1,
// Unbounded).
func SepBy[T any](inner, sep Rule[T]) Rule[T] {
	return ManySep(inner, sep, 1, Unbounded)
}

// --- Find --------------------------------------------------------------

type findRule[T any] struct {
	inner Rule[T]
}

// Find creates a rule that skips input one element at a time until the
// wrapped rule matches, then succeeds with the position past that
// match; the skipped prefix counts as consumed. It fails only when the
// end of input is reached without a match.
func Find[T any](inner Rule[T]) Rule[T] {
	return findRule[T]{inner: inner}
}

func (r findRule[T]) Match(input []T, at int) Result {
	for pos := at; pos <= len(input); pos++ {
		if res := r.inner.Match(input, pos); res.Matched {
			return Success(res.Position, at)
		}
	}
	return Failure(at)
}

// --- Selection ---------------------------------------------------------

type selectRule[T any] struct {
	disc, then, els Rule[T]
}

// Select creates an if/then/else rule. The discriminator is evaluated
// exactly once at the current position: if it matches, the then-rule
// must also match, continuing where the discriminator ended; otherwise
// the else-rule must match at the current position.
func Select[T any](disc, then, els Rule[T]) Rule[T] {
	return selectRule[T]{disc: disc, then: then, els: els}
}

func (r selectRule[T]) Match(input []T, at int) Result {
	d := r.disc.Match(input, at)
	if d.Matched {
		if t := r.then.Match(input, d.Position); t.Matched {
			return Success(t.Position, at)
		}
		return Failure(at)
	}
	if e := r.els.Match(input, at); e.Matched {
		return Success(e.Position, at)
	}
	return Failure(at)
}

// --- Lookahead ---------------------------------------------------------

type testRule[T any] struct {
	inner Rule[T]
}

// Test creates a lookahead rule: it matches the wrapped rule,
// applying any of its capture side effects, but always rewinds the
// reported position to the original start, whether the wrapped rule
// matched or not. The wrapped rule's outcome is reported unchanged.
func Test[T any](inner Rule[T]) Rule[T] {
	return testRule[T]{inner: inner}
}

func (r testRule[T]) Match(input []T, at int) Result {
	res := r.inner.Match(input, at)
	return Result{Matched: res.Matched, Position: at, Start: at}
}

// --- Failure hook ------------------------------------------------------

type onFailRule[T any] struct {
	inner Rule[T]
	hook  func(input []T, at int)
}

// OnFail wraps a rule with a diagnostic/recovery hook. The hook is
// invoked exactly once, with the input and the position the attempt
// started at, whenever the wrapped rule fails. Placed around the last
// alternative of a choice chain it surfaces a parse error with
// positional context once all alternatives are exhausted.
func OnFail[T any](inner Rule[T], hook func(input []T, at int)) Rule[T] {
	if hook == nil {
		panic("rule.OnFail: nil hook")
	}
	return onFailRule[T]{inner: inner, hook: hook}
}

func (r onFailRule[T]) Match(input []T, at int) Result {
	res := r.inner.Match(input, at)
	if !res.Matched {
		tracer().Debugf("failure hook fires at position %d", at)
		r.hook(input, at)
	}
	return res
}

// --- Difference --------------------------------------------------------

// Diff creates a rule matching a only where b does not match at the
// same position, i.e. Seq(Not(b), a).
func Diff[T any](a, b Rule[T]) Rule[T] {
	return Seq[T](Not(b), a)
}
