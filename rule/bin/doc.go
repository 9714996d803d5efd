/*
Package bin provides byte-layout terminals for the rule engine:
fixed byte-pattern matching and output-binding captures of fixed-width
values from raw byte input.

All rules in this package operate on []byte input and take an explicit
encoding/binary byte order; the wire layout is never implied by the
host's endianness.

The capture rules (Var, Array, Sequence, SequenceList) bind to exactly
one caller-owned destination each and write into it as a side effect of
matching. A single rule instance used twice writes into the same bound
destination both times; bind fresh destinations per use site. Captures
already performed are not rolled back when an enclosing combinator
discards the branch.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 The gPH authors
*/
package bin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to gph.rule .
func tracer() tracing.Trace {
	return tracing.Select("gph.rule")
}
