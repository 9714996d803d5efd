/*
Package scan provides a driver that applies a rule repeatedly over
buffered input, yielding successive matched spans.

The engine in package rule is purely computational: it matches a rule
expression against an in-memory range. Embedders reading a whole file
of declarations usually want to apply one rule over and over, walking
the input span by span. Scanner is that loop, with an interface similar
to bufio.Scanner: successive calls to Next() step through the matches,
and Text() returns the most recent span.

  decl := rule.Seq(rule.Ident(), rule.Char(';'))
  sc := scan.NewScanner(rule.Or[rune](decl, rule.WhileN(rule.IsSpace, 1, rule.Unbounded)))
  sc.Init(file)
  for sc.Next() {
      // do something with sc.Text()
  }

The scanner stops at the first position where the rule fails or
matches without consuming input; Pos() then locates where matching
stopped, which is the sanctioned way to report a parse error with
positional context.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 The gPH authors
*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to gph.scan .
func tracer() tracing.Trace {
	return tracing.Select("gph.scan")
}
