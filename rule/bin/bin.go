package bin

import (
	"bytes"
	"encoding/binary"

	"github.com/emirpasic/gods/lists"

	"github.com/les-champions/gPH/rule"
)

// Fixed enumerates the fixed-width element types the capture rules of
// this package can read from a byte layout.
type Fixed interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64
}

// width returns the encoded size of T in bytes.
func width[T Fixed]() int {
	var zero T
	return binary.Size(zero)
}

// decode reads one T from the front of b. b must hold at least
// width[T]() bytes.
func decode[T Fixed](order binary.ByteOrder, b []byte, dst *T) {
	if err := binary.Read(bytes.NewReader(b), order, dst); err != nil {
		panic("bin: decode of fixed-width value failed: " + err.Error())
	}
}

// --- Fixed byte-pattern match ------------------------------------------

type patternRule struct {
	pattern []byte
}

// Pattern creates a rule that compares the next bytes of input against
// the encoding of v in the given byte order. It succeeds only if all
// bytes are present and equal; shorter input fails without consuming.
func Pattern[T Fixed](order binary.ByteOrder, v T) rule.Rule[byte] {
	var buf bytes.Buffer
	if err := binary.Write(&buf, order, v); err != nil {
		panic("bin.Pattern: cannot encode pattern value: " + err.Error())
	}
	return patternRule{pattern: buf.Bytes()}
}

func (r patternRule) Match(input []byte, at int) rule.Result {
	if at+len(r.pattern) > len(input) {
		return rule.Failure(at)
	}
	if !bytes.Equal(input[at:at+len(r.pattern)], r.pattern) {
		return rule.Failure(at)
	}
	return rule.Success(at+len(r.pattern), at)
}

// --- Variable capture ----------------------------------------------------

type varRule[T Fixed] struct {
	dst   *T
	order binary.ByteOrder
	width int
}

// Var creates a rule that reads one fixed-width value from the input
// into the caller-owned destination. It succeeds only if the full
// width is available; on shorter input it fails, rewinds, and leaves
// the destination untouched.
func Var[T Fixed](order binary.ByteOrder, dst *T) rule.Rule[byte] {
	if dst == nil {
		panic("bin.Var: nil destination")
	}
	return varRule[T]{dst: dst, order: order, width: width[T]()}
}

func (r varRule[T]) Match(input []byte, at int) rule.Result {
	if at+r.width > len(input) {
		return rule.Failure(at)
	}
	decode(r.order, input[at:at+r.width], r.dst)
	return rule.Success(at+r.width, at)
}

// --- Array capture --------------------------------------------------------

type arrayRule[T Fixed] struct {
	dst   []T
	order binary.ByteOrder
	width int
}

// Array creates a rule that reads len(dst) fixed-width values from the
// input into the caller-owned array. It fails as soon as an element
// read finds insufficient input, rewinding the position; elements
// already filled stay written.
func Array[T Fixed](order binary.ByteOrder, dst []T) rule.Rule[byte] {
	return arrayRule[T]{dst: dst, order: order, width: width[T]()}
}

func (r arrayRule[T]) Match(input []byte, at int) rule.Result {
	pos := at
	for s := range r.dst {
		if pos+r.width > len(input) {
			return rule.Failure(at)
		}
		decode(r.order, input[pos:pos+r.width], &r.dst[s])
		pos += r.width
	}
	return rule.Success(pos, at)
}

// --- Bounded sequence capture ----------------------------------------------

type sequenceRule[T Fixed] struct {
	dst      *[]T
	order    binary.ByteOrder
	width    int
	min, max int
}

// Sequence creates a rule that clears the caller-owned slice, then
// greedily reads fixed-width values into it, up to max elements. It
// succeeds iff at least min elements were read. Pass rule.Unbounded
// for no upper bound.
func Sequence[T Fixed](order binary.ByteOrder, dst *[]T, min, max int) rule.Rule[byte] {
	if dst == nil {
		panic("bin.Sequence: nil destination")
	}
	if min < 0 || max < min {
		panic("bin.Sequence: invalid occurrence bounds")
	}
	return sequenceRule[T]{dst: dst, order: order, width: width[T](), min: min, max: max}
}

func (r sequenceRule[T]) Match(input []byte, at int) rule.Result {
	*r.dst = (*r.dst)[:0]
	pos, count := at, 0
	for count < r.max && pos+r.width <= len(input) {
		var t T
		decode(r.order, input[pos:pos+r.width], &t)
		*r.dst = append(*r.dst, t)
		pos += r.width
		count++
	}
	if count < r.min {
		return rule.Failure(at)
	}
	return rule.Success(pos, at)
}

// --- Bounded sequence capture into a growable container ---------------------

type sequenceListRule[T Fixed] struct {
	dst      lists.List
	order    binary.ByteOrder
	width    int
	min, max int
}

// SequenceList is Sequence capturing into a caller-supplied growable
// container instead of a slice. The container is cleared before
// reading; each element read is appended with Add.
func SequenceList[T Fixed](order binary.ByteOrder, dst lists.List, min, max int) rule.Rule[byte] {
	if dst == nil {
		panic("bin.SequenceList: nil destination container")
	}
	if min < 0 || max < min {
		panic("bin.SequenceList: invalid occurrence bounds")
	}
	return sequenceListRule[T]{dst: dst, order: order, width: width[T](), min: min, max: max}
}

func (r sequenceListRule[T]) Match(input []byte, at int) rule.Result {
	r.dst.Clear()
	pos, count := at, 0
	for count < r.max && pos+r.width <= len(input) {
		var t T
		decode(r.order, input[pos:pos+r.width], &t)
		r.dst.Add(t)
		pos += r.width
		count++
	}
	tracer().Debugf("sequence capture read %d element(s)", count)
	if count < r.min {
		return rule.Failure(at)
	}
	return rule.Success(pos, at)
}
