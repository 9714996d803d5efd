package bin_test

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/les-champions/gPH/rule"
	"github.com/les-champions/gPH/rule/bin"
)

func TestPattern(t *testing.T) {
	r := bin.Pattern(binary.LittleEndian, uint32(0xCAFEBABE))
	input := []byte{0xBE, 0xBA, 0xFE, 0xCA, 0xFF}
	res := r.Match(input, 0)
	if !res.Matched || res.Position != 4 {
		t.Errorf("pattern should consume its full width; got %+v", res)
	}
	if res := r.Match([]byte{0xBE, 0xBA, 0xFE, 0xCB}, 0); res.Matched || res.Position != 0 {
		t.Errorf("differing byte should fail without consuming; got %+v", res)
	}
}

func TestPatternShortInput(t *testing.T) {
	r := bin.Pattern(binary.LittleEndian, uint32(0xCAFEBABE))
	res := r.Match([]byte{0xBE, 0xBA}, 0)
	if res.Matched {
		t.Error("pattern against shorter input should fail")
	}
	if res.Position != 0 {
		t.Errorf("failure must report no partial consumption; position is %d", res.Position)
	}
}

func TestVar(t *testing.T) {
	var v uint16
	r := bin.Var(binary.LittleEndian, &v)
	res := r.Match([]byte{0x34, 0x12, 0xFF}, 0)
	if !res.Matched || res.Position != 2 {
		t.Errorf("capture should consume the full width; got %+v", res)
	}
	if v != 0x1234 {
		t.Errorf("captured value should be 0x1234, is %#x", v)
	}
}

func TestVarShortInput(t *testing.T) {
	v := uint16(0xBEEF) // sentinel; must stay untouched
	r := bin.Var(binary.LittleEndian, &v)
	res := r.Match([]byte{0x34}, 0)
	if res.Matched || res.Position != 0 {
		t.Errorf("short input should fail and rewind; got %+v", res)
	}
	if v != 0xBEEF {
		t.Errorf("destination must stay untouched on failure, is %#x", v)
	}
}

func TestArray(t *testing.T) {
	dst := make([]uint16, 3)
	r := bin.Array(binary.BigEndian, dst)
	res := r.Match([]byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x03}, 0)
	if !res.Matched || res.Position != 6 {
		t.Errorf("array capture should consume 3 elements; got %+v", res)
	}
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Errorf("captured elements should be 1,2,3; got %v", dst)
	}
}

func TestArrayShortInput(t *testing.T) {
	dst := make([]uint16, 3)
	r := bin.Array(binary.BigEndian, dst)
	res := r.Match([]byte{0x00, 0x01, 0x00, 0x02, 0x00}, 0)
	if res.Matched || res.Position != 0 {
		t.Errorf("array capture should fail and rewind on short input; got %+v", res)
	}
	// elements read before the failure stay written
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("already filled elements should stay written; got %v", dst)
	}
}

func TestSequence(t *testing.T) {
	var dst []uint16
	r := bin.Sequence(binary.LittleEndian, &dst, 1, 3)
	res := r.Match([]byte{1, 0, 2, 0, 3, 0, 4, 0}, 0)
	if !res.Matched || res.Position != 6 {
		t.Errorf("sequence capture should stop at 3 elements; got %+v", res)
	}
	if len(dst) != 3 || dst[0] != 1 || dst[2] != 3 {
		t.Errorf("captured sequence should be [1 2 3]; got %v", dst)
	}
	// the destination is cleared per match
	res = r.Match([]byte{9, 0}, 0)
	if !res.Matched || len(dst) != 1 || dst[0] != 9 {
		t.Errorf("re-match should clear and refill the destination; got %v", dst)
	}
}

func TestSequenceBelowMinimum(t *testing.T) {
	var dst []uint32
	r := bin.Sequence(binary.LittleEndian, &dst, 2, rule.Unbounded)
	res := r.Match([]byte{1, 0, 0, 0, 2}, 0)
	if res.Matched || res.Position != 0 {
		t.Errorf("one full element is below the minimum of 2; got %+v", res)
	}
}

func TestSequenceList(t *testing.T) {
	list := arraylist.New()
	r := bin.SequenceList[uint8](binary.LittleEndian, list, 1, rule.Unbounded)
	res := r.Match([]byte{7, 8, 9}, 0)
	if !res.Matched || res.Position != 3 {
		t.Errorf("container capture should consume all elements; got %+v", res)
	}
	if list.Size() != 3 {
		t.Fatalf("container should hold 3 elements, holds %d", list.Size())
	}
	if v, _ := list.Get(1); v.(uint8) != 8 {
		t.Errorf("second element should be 8, is %v", v)
	}
}

func ExampleVar() {
	// a binary header: 2-byte magic followed by a 2-byte version
	var version uint16
	header := rule.Seq(
		bin.Pattern(binary.BigEndian, uint16(0x5048)), // "PH"
		bin.Var(binary.BigEndian, &version),
	)
	res := rule.MatchBytes(header, []byte{0x50, 0x48, 0x00, 0x03})
	fmt.Println(res.Matched, version)
	// Output: true 3
}
