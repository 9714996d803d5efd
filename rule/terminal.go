package rule

// Terminal rules: atomic matchers operating directly on the input
// range, without delegating to sub-rules.

// --- Empty -----------------------------------------------------------

type emptyRule[T any] struct{}

// Empty creates a rule that always matches and never consumes input.
func Empty[T any]() Rule[T] {
	return emptyRule[T]{}
}

func (emptyRule[T]) Match(input []T, at int) Result {
	return Success(at, at)
}

// --- Boolean injection -----------------------------------------------

type boolRule[T any] struct {
	outcome bool
}

// Bool creates a rule that succeeds or fails according to a fixed
// boolean outcome, consuming nothing. It embeds a semantic assertion
// known at grammar-construction time into a rule expression.
func Bool[T any](outcome bool) Rule[T] {
	return boolRule[T]{outcome: outcome}
}

func (r boolRule[T]) Match(input []T, at int) Result {
	if r.outcome {
		return Success(at, at)
	}
	return Failure(at)
}

type boolFuncRule[T any] struct {
	decide func() bool
}

// BoolFunc creates a rule that evaluates a caller-supplied decision
// callback at match time and succeeds or fails accordingly, consuming
// nothing. It embeds semantic assertions or actions mid-grammar.
func BoolFunc[T any](decide func() bool) Rule[T] {
	if decide == nil {
		panic("rule.BoolFunc: nil decision callback")
	}
	return boolFuncRule[T]{decide: decide}
}

func (r boolFuncRule[T]) Match(input []T, at int) Result {
	if r.decide() {
		return Success(at, at)
	}
	return Failure(at)
}

// --- Single-element exact match --------------------------------------

type tokenRule[T comparable] struct {
	token T
}

// Token creates a rule that matches a single input element equal to
// token, consuming exactly one element on success and none on failure.
func Token[T comparable](token T) Rule[T] {
	return tokenRule[T]{token: token}
}

func (r tokenRule[T]) Match(input []T, at int) Result {
	if at < len(input) && input[at] == r.token {
		return Success(at+1, at)
	}
	return Failure(at)
}

// Char creates a rule matching a single rune. It is Token specialized
// for rune input, the common case for textual grammars.
func Char(c rune) Rule[rune] {
	return Token(c)
}

// --- Element-pattern match -------------------------------------------

type tokensRule[T comparable] struct {
	pattern []T
}

// Tokens creates a rule that matches the given element pattern
// exactly. The pattern is copied, so the rule is safe to store and
// reuse. An empty pattern matches trivially without consuming.
func Tokens[T comparable](pattern ...T) Rule[T] {
	p := make([]T, len(pattern))
	copy(p, pattern)
	return tokensRule[T]{pattern: p}
}

func (r tokensRule[T]) Match(input []T, at int) Result {
	return matchPattern(r.pattern, input, at)
}

type tokensRefRule[T comparable] struct {
	pattern *[]T
}

// TokensRef creates a rule that matches the element pattern referenced
// by pattern, resolved at match time. The caller must guarantee that
// the referenced slice outlives every match using this rule; in
// exchange the pattern may be swapped between matches. For a pattern
// held by value use Tokens.
func TokensRef[T comparable](pattern *[]T) Rule[T] {
	if pattern == nil {
		panic("rule.TokensRef: nil pattern reference")
	}
	return tokensRefRule[T]{pattern: pattern}
}

func (r tokensRefRule[T]) Match(input []T, at int) Result {
	return matchPattern(*r.pattern, input, at)
}

func matchPattern[T comparable](pattern []T, input []T, at int) Result {
	if len(pattern) == 0 { // empty pattern always matches
		return Success(at, at)
	}
	if at+len(pattern) > len(input) {
		return Failure(at)
	}
	for s, t := range pattern {
		if input[at+s] != t {
			return Failure(at)
		}
	}
	return Success(at+len(pattern), at)
}

// Str creates a rule that matches the runes of s exactly. The string
// is held by value. An empty string matches trivially.
func Str(s string) Rule[rune] {
	return Tokens([]rune(s)...)
}

// --- Predicate terminals ---------------------------------------------

type predRule[T any] struct {
	pred func(T) bool
}

// Pred creates a rule that matches a single input element satisfying
// the predicate, consuming one element.
func Pred[T any](pred func(T) bool) Rule[T] {
	if pred == nil {
		panic("rule.Pred: nil predicate")
	}
	return predRule[T]{pred: pred}
}

func (r predRule[T]) Match(input []T, at int) Result {
	if at < len(input) && r.pred(input[at]) {
		return Success(at+1, at)
	}
	return Failure(at)
}

type whileRule[T any] struct {
	pred     func(T) bool
	min, max int
}

// While creates a rule that greedily consumes a maximal run of
// elements satisfying the predicate. It always matches, even with zero
// elements consumed; for a required minimum use WhileN.
func While[T any](pred func(T) bool) Rule[T] {
	return WhileN(pred, 0, Unbounded)
}

// WhileN creates a rule that greedily consumes a run of elements
// satisfying the predicate, capped at max elements, and matches only
// if at least min elements were consumed. Pass Unbounded for no upper
// bound.
func WhileN[T any](pred func(T) bool, min, max int) Rule[T] {
	if pred == nil {
		panic("rule.WhileN: nil predicate")
	}
	checkBounds("rule.WhileN", min, max)
	return whileRule[T]{pred: pred, min: min, max: max}
}

func (r whileRule[T]) Match(input []T, at int) Result {
	pos, count := at, 0
	for pos < len(input) && count < r.max && r.pred(input[pos]) {
		pos++
		count++
	}
	if count < r.min {
		return Failure(at)
	}
	return Success(pos, at)
}

// --- Identifier -------------------------------------------------------

type identRule struct{}

// Ident creates a rule matching an identifier: one alphabetic rune
// followed by zero or more alphanumeric runes. It fails if the first
// rune is absent or non-alphabetic.
func Ident() Rule[rune] {
	return identRule{}
}

func (identRule) Match(input []rune, at int) Result {
	if at >= len(input) || !IsAlpha(input[at]) {
		return Failure(at)
	}
	pos := at + 1
	for pos < len(input) && IsAlnum(input[pos]) {
		pos++
	}
	return Success(pos, at)
}

// --- End of input -----------------------------------------------------

type endRule[T any] struct{}

// End creates a rule that matches exactly at the end of the input
// range, consuming nothing.
func End[T any]() Rule[T] {
	return endRule[T]{}
}

func (endRule[T]) Match(input []T, at int) Result {
	if at == len(input) {
		return Success(at, at)
	}
	return Failure(at)
}

// --- Advance ----------------------------------------------------------

type advanceRule[T any] struct {
	offset int
}

// Advance creates a rule that succeeds iff at least offset elements
// remain, consuming exactly that many; it fails without consuming
// otherwise.
func Advance[T any](offset int) Rule[T] {
	if offset < 0 {
		panic("rule.Advance: negative offset")
	}
	return advanceRule[T]{offset: offset}
}

func (r advanceRule[T]) Match(input []T, at int) Result {
	if len(input)-at < r.offset {
		return Failure(at)
	}
	return Success(at+r.offset, at)
}
