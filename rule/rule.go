package rule

// A Rule attempts a match over input[at:] and produces a Result.
// Anything implementing this single operation qualifies as a rule and
// composes freely with the combinators of this package.
//
// Implementations must be pure functions of the input content and the
// starting position, except for the documented output-binding side
// effects of capture rules. A rule must never report success with a
// position earlier than at, and never report failure with a position
// later than at.
type Rule[T any] interface {
	Match(input []T, at int) Result
}

// RuleFunc adapts an ordinary function to the Rule interface, for
// embedders that want to drop a custom terminal into a grammar.
type RuleFunc[T any] func(input []T, at int) Result

// Match calls f.
func (f RuleFunc[T]) Match(input []T, at int) Result {
	return f(input, at)
}

// A Ref is a level of indirection around another rule. It allows a
// grammar to refer to itself, directly or mutually, without infinite
// structural nesting: the referenced rule is resolved lazily at match
// time, not at construction time.
//
// A Ref is created unbound with NewRef and bound exactly once with
// Set, after the rule tree it participates in has been assembled.
type Ref[T any] struct {
	target Rule[T]
}

// NewRef creates an unbound reference rule.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Set binds the reference to its target rule. Binding an already bound
// reference or binding it to nil is a construction error and panics.
func (ref *Ref[T]) Set(target Rule[T]) {
	if target == nil {
		panic("rule.Ref: Set(nil) is not a valid binding")
	}
	if ref.target != nil {
		panic("rule.Ref: reference is already bound")
	}
	ref.target = target
}

// Match defers to the bound target rule. Matching through an unbound
// reference is a construction-time contract violation and panics.
func (ref *Ref[T]) Match(input []T, at int) Result {
	if ref.target == nil {
		panic("rule.Ref: match through unbound reference; call Set(...) first")
	}
	return ref.target.Match(input, at)
}
