//go:build cgo

package bindings

import (
	"testing"
)

func TestBitmapSetWeight(t *testing.T) {
	bm := BitmapAlloc()
	if bm == nil {
		t.Fatal("BitmapAlloc returned nil")
	}
	defer BitmapFree(bm)

	if !BitmapIsZero(bm) {
		t.Error("fresh bitmap is not zero")
	}

	BitmapSet(bm, 0)
	BitmapSet(bm, 3)
	if w := BitmapWeight(bm); w != 2 {
		t.Errorf("weight = %d, want 2", w)
	}
	if !BitmapIsSet(bm, 3) {
		t.Error("index 3 not set")
	}
	if BitmapIsSet(bm, 1) {
		t.Error("index 1 unexpectedly set")
	}
}

func TestBitmapRangeAndIteration(t *testing.T) {
	bm := BitmapAlloc()
	if bm == nil {
		t.Fatal("BitmapAlloc returned nil")
	}
	defer BitmapFree(bm)

	BitmapSetRange(bm, 2, 5)
	if first := BitmapFirst(bm); first != 2 {
		t.Errorf("first = %d, want 2", first)
	}
	if last := BitmapLast(bm); last != 5 {
		t.Errorf("last = %d, want 5", last)
	}

	var got []int
	for id := BitmapNext(bm, -1); id != -1; id = BitmapNext(bm, id) {
		got = append(got, id)
	}
	want := []int{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("iterated %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("iterated %v, want %v", got, want)
		}
	}

	s, err := BitmapListString(bm)
	if err != nil {
		t.Fatalf("BitmapListString: %v", err)
	}
	if s != "2-5" {
		t.Errorf("list string = %q, want %q", s, "2-5")
	}
}

func TestBitmapDupAndCompare(t *testing.T) {
	bm := BitmapAlloc()
	if bm == nil {
		t.Fatal("BitmapAlloc returned nil")
	}
	defer BitmapFree(bm)

	BitmapSet(bm, 7)
	dup := BitmapDup(bm)
	if dup == nil {
		t.Fatal("BitmapDup returned nil")
	}
	defer BitmapFree(dup)

	if !BitmapIsEqual(bm, dup) {
		t.Error("dup not equal to source")
	}
	if c := BitmapCompare(bm, dup); c != 0 {
		t.Errorf("compare = %d, want 0", c)
	}

	BitmapClr(dup, 7)
	if BitmapIsEqual(bm, dup) {
		t.Error("bitmaps equal after clearing dup")
	}
}

func TestBitmapFullAndNot(t *testing.T) {
	full := BitmapAllocFull()
	if full == nil {
		t.Fatal("BitmapAllocFull returned nil")
	}
	defer BitmapFree(full)

	if !BitmapIsFull(full) {
		t.Error("alloc_full bitmap is not full")
	}

	empty := BitmapAlloc()
	if empty == nil {
		t.Fatal("BitmapAlloc returned nil")
	}
	defer BitmapFree(empty)

	BitmapNot(empty, full)
	if !BitmapIsZero(empty) {
		t.Error("complement of full bitmap is not zero")
	}
}

func TestCompareTypesSelf(t *testing.T) {
	// Any type compares equal to itself regardless of topology state.
	if c := CompareTypes(0, 0); c != 0 {
		t.Errorf("CompareTypes(0, 0) = %d, want 0", c)
	}
}
