package scan

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/les-champions/gPH/rule"
)

// A Scanner applies a rule repeatedly over input read from an
// io.Reader and steps through the matched spans.
//
// The rule to apply is fixed at construction; the input is supplied
// with Init. Scanners may be re-initialized for new input once a scan
// is through.
type Scanner struct {
	rule     rule.Rule[rune] // the rule to apply at every step
	input    []rune          // decoded input text
	segment  []rune          // the most recent matched span
	pos      int             // current position in input, in runes
	maxInput int             // maximum number of input bytes accepted
	err      error           // first error encountered
	inUse    bool            // Next() has been called; input is in use
	ready    bool            // Init(...) has been called
}

// MaxInputSize is the maximum size of input buffered by a Scanner
// unless the user sets an explicit bound with Scanner.MaxInput().
const MaxInputSize = 64 * 1024

// ErrTooLong flags input exceeding the scanner's buffer bound.
// ErrNotInitialized is returned if a scanner's Next-function is called
// without first setting an input source.
var (
	ErrTooLong        = errors.New("gPH scanner: input too long for buffer")
	ErrNotInitialized = errors.New("gPH scanner not initialized; must call Init(...) first")
)

// NewScanner creates a Scanner stepping through input with the given
// rule. The rule is applied anew at the position each previous match
// ended at.
func NewScanner(r rule.Rule[rune]) *Scanner {
	if r == nil {
		panic("scan.NewScanner: nil rule")
	}
	return &Scanner{rule: r, maxInput: MaxInputSize}
}

// Init initializes a Scanner with an io.Reader to read from. s is
// either a newly created scanner to be initialized, or we may
// re-initialize a scanner already in use. The input is read and
// decoded to runes up front, bounded by the scanner's maximum input
// size.
func (s *Scanner) Init(reader io.Reader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.input = nil
	s.segment = nil
	s.pos = 0
	s.err = nil
	s.inUse = false
	s.ready = true
	data, err := io.ReadAll(io.LimitReader(reader, int64(s.maxInput)+1))
	if err != nil {
		s.setErr(err)
		return
	}
	if len(data) > s.maxInput {
		s.setErr(ErrTooLong)
		return
	}
	for _, r := range string(data) {
		s.input = append(s.input, r)
	}
}

// MaxInput sets the maximum number of input bytes the scanner accepts
// during Init. By default a Scanner accepts up to MaxInputSize bytes.
//
// MaxInput panics if it is called after scanning has started. Clients
// will have to call Init(...) again to permit re-setting the bound.
func (s *Scanner) MaxInput(max int) {
	if s.inUse {
		panic("scan.MaxInput: scan already started; cannot re-set bound")
	}
	if max <= 0 {
		panic("scan.MaxInput: bound must be positive")
	}
	s.maxInput = max
}

// Next advances the Scanner to the next matched span, which will then
// be available through the Runes() or Text() method. It returns false
// when the scan stops, either by reaching the end of the input, by the
// rule failing to match, by the rule matching without consuming input,
// or by an error. After Next() returns false, the Err() method will
// return any error that occurred during scanning, and Pos() locates
// where matching stopped.
func (s *Scanner) Next() bool {
	if !s.ready {
		s.setErr(ErrNotInitialized)
		return false
	}
	if s.err != nil {
		s.segment = nil
		return false
	}
	s.inUse = true
	if s.pos >= len(s.input) {
		s.segment = nil
		return false
	}
	res := s.rule.Match(s.input, s.pos)
	if !res.Matched {
		tracer().P("pos", strconv.Itoa(s.pos)).Debugf("rule failed; scan stops")
		s.segment = nil
		return false
	}
	if res.Position == s.pos {
		tracer().P("pos", strconv.Itoa(s.pos)).Debugf("rule consumed no input; scan stops")
		s.segment = nil
		return false
	}
	s.segment = s.input[s.pos:res.Position]
	s.pos = res.Position
	tracer().P("length", strconv.Itoa(len(s.segment))).Debugf("Next() = %q", string(s.segment))
	return true
}

// Runes returns the most recent span matched by a call to Next().
// The underlying array aliases the scanner's input buffer and will be
// invalidated by a subsequent call to Init(). No allocation is
// performed.
func (s *Scanner) Runes() []rune {
	return s.segment
}

// Text returns the most recent span matched by a call to Next() as a
// newly allocated string.
func (s *Scanner) Text() string {
	return string(s.segment)
}

// Pos returns the current position of the scanner within the input,
// in runes. After the scan has stopped it locates where matching
// stopped.
func (s *Scanner) Pos() int {
	return s.pos
}

// Err returns the first error that was encountered by the Scanner,
// except for io.EOF, which is reported as nil.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// setErr records the first error encountered.
func (s *Scanner) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}
