package scan_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/les-champions/gPH/rule"
	"github.com/les-champions/gPH/scan"
)

func wordsAndSpaces() rule.Rule[rune] {
	word := rule.WhileN(rule.IsAlnum, 1, rule.Unbounded)
	space := rule.WhileN(rule.IsSpace, 1, rule.Unbounded)
	return rule.Or(word, space)
}

func ExampleScanner() {
	sc := scan.NewScanner(wordsAndSpaces())
	sc.Init(strings.NewReader("ab cd ef"))
	for sc.Next() {
		fmt.Printf("'%s'\n", sc.Text())
	}
	// Output: 'ab'
	// ' '
	// 'cd'
	// ' '
	// 'ef'
}

func TestScanWords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sc := scan.NewScanner(wordsAndSpaces())
	sc.Init(strings.NewReader("ab cd ef"))
	n := 0
	for sc.Next() {
		t.Logf("'%s'", sc.Text())
		n++
	}
	if n != 5 {
		t.Errorf("expected # of spans to be 5, is %d", n)
	}
	if sc.Err() != nil {
		t.Errorf("scan should finish without error, got %v", sc.Err())
	}
}

func TestScanStopsWhereRuleFails(t *testing.T) {
	sc := scan.NewScanner(rule.WhileN(rule.IsAlnum, 1, rule.Unbounded))
	sc.Init(strings.NewReader("ab!cd"))
	if !sc.Next() || sc.Text() != "ab" {
		t.Fatalf("first span should be 'ab', is %q", sc.Text())
	}
	if sc.Next() {
		t.Error("scan should stop where the rule fails")
	}
	if sc.Pos() != 2 {
		t.Errorf("Pos() should locate the stop at 2, is %d", sc.Pos())
	}
	if sc.Err() != nil {
		t.Errorf("a rule mismatch is not an error, got %v", sc.Err())
	}
}

func TestScanZeroWidthStops(t *testing.T) {
	sc := scan.NewScanner(rule.While(rule.IsDigit)) // matches zero-width everywhere
	sc.Init(strings.NewReader("abc"))
	if sc.Next() {
		t.Error("a zero-width match must stop the scan")
	}
	if sc.Pos() != 0 {
		t.Errorf("scanner should not have advanced, Pos() is %d", sc.Pos())
	}
}

func TestScanNotInitialized(t *testing.T) {
	sc := scan.NewScanner(wordsAndSpaces())
	if sc.Next() {
		t.Error("scan without Init should not yield spans")
	}
	if !errors.Is(sc.Err(), scan.ErrNotInitialized) {
		t.Errorf("Err() should be ErrNotInitialized, is %v", sc.Err())
	}
}

func TestScanInputTooLong(t *testing.T) {
	sc := scan.NewScanner(wordsAndSpaces())
	sc.MaxInput(4)
	sc.Init(strings.NewReader("hello world"))
	if sc.Next() {
		t.Error("overlong input should not yield spans")
	}
	if !errors.Is(sc.Err(), scan.ErrTooLong) {
		t.Errorf("Err() should be ErrTooLong, is %v", sc.Err())
	}
}

func TestScanReInit(t *testing.T) {
	sc := scan.NewScanner(wordsAndSpaces())
	sc.Init(strings.NewReader("one"))
	for sc.Next() {
	}
	sc.Init(strings.NewReader("two more"))
	n := 0
	for sc.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("re-initialized scan should yield 3 spans, yielded %d", n)
	}
}

func TestMaxInputPanicsAfterStart(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("re-setting the bound mid-scan should panic")
		}
	}()
	sc := scan.NewScanner(wordsAndSpaces())
	sc.Init(strings.NewReader("abc"))
	sc.Next()
	sc.MaxInput(10)
}

func TestScanEmptyInput(t *testing.T) {
	sc := scan.NewScanner(wordsAndSpaces())
	sc.Init(nil)
	if sc.Next() {
		t.Error("empty input should yield no spans")
	}
	if sc.Err() != nil {
		t.Errorf("empty input is not an error, got %v", sc.Err())
	}
}
