/*
Package rule implements a generic pattern-matching engine built from
small composable rule values.

Content

A Rule is a value exposing a single operation: attempt a match against
an input range and report a Result. Terminal rules match directly
against input elements (single elements, element patterns, predicate
runs, end of input). Composite combinators build new rules from
sub-rules: sequence, ordered choice, negation, option, exclusive-or,
bounded and separated repetition, search, conditional selection,
lookahead, failure hooks and references for self-referential grammars.

The engine is in the PEG family: matching is deterministic, greedy and
uses ordered (first-match-wins) choice. It performs no tokenization
pass of its own, builds no parse tree, and resolves no ambiguity beyond
trying alternatives in order. Matching is synchronous recursive
descent; failure is an ordinary value, never an error or a panic.

Typical Usage

Grammars are assembled once from the builder functions of this package
and then matched against one or more inputs:

  assign := rule.Seq(
      rule.Ident(),
      rule.While(rule.IsSpace),
      rule.Char('='),
      rule.While(rule.IsSpace),
      rule.Ident(),
  )
  res, text := rule.MatchString(assign, "lhs = rhs")

Rules are generic over the element type of the input. Grammars over
runes are the common case, but any element type works, including
application token types (see Token) and raw bytes (see sub-package
bin for binary layouts and output-binding captures).

Self-referential grammars must pass through an explicit indirection,
created with NewRef, so that a rule tree can refer to itself without
infinite structural nesting:

  expr := rule.NewRef[rune]()
  parens := rule.Seq(rule.Char('('), expr, rule.Char(')'))
  expr.Set(rule.Or[rune](parens, rule.Ident()))

Side Effects

Rule trees are immutable after construction and may be matched against
many inputs. The single exception are output-binding rules (the capture
terminals of sub-package bin), which write into caller-owned
destinations during matching. Captures performed by a sub-rule are NOT
rolled back when an enclosing choice, selection or negation discards
the branch; embedders that need pristine destinations must bind fresh
ones per match.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 The gPH authors
*/
package rule

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to gph.rule .
func tracer() tracing.Trace {
	return tracing.Select("gph.rule")
}
