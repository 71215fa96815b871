//go:build cgo && !windows

package hwloc_test

import (
	"testing"

	"github.com/numalab/hwloc-go/pkg/hwloc"
)

func TestBitmapBasics(t *testing.T) {
	bm, err := hwloc.NewBitmap()
	if err != nil {
		t.Fatalf("NewBitmap: %v", err)
	}
	defer bm.Close()

	if !bm.IsZero() {
		t.Error("fresh bitmap not zero")
	}

	bm.Set(1)
	bm.Set(5)
	bm.SetRange(8, 11)

	if w := bm.Weight(); w != 6 {
		t.Errorf("Weight = %d, want 6", w)
	}
	if bm.First() != 1 {
		t.Errorf("First = %d, want 1", bm.First())
	}
	if bm.Last() != 11 {
		t.Errorf("Last = %d, want 11", bm.Last())
	}
	if got := bm.String(); got != "1,5,8-11" {
		t.Errorf("String = %q, want %q", got, "1,5,8-11")
	}

	bm.Clear(5)
	if bm.IsSet(5) {
		t.Error("index 5 still set after Clear")
	}
	bm.ClearRange(8, 9)
	if got := bm.String(); got != "1,10-11" {
		t.Errorf("String = %q, want %q", got, "1,10-11")
	}

	want := []uint{1, 10, 11}
	got := bm.Slice()
	if len(got) != len(want) {
		t.Fatalf("Slice = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice = %v, want %v", got, want)
		}
	}

	bm.Zero()
	if !bm.IsZero() {
		t.Error("bitmap not zero after Zero")
	}
}

func TestBitmapSinglify(t *testing.T) {
	bm, err := hwloc.NewBitmap()
	if err != nil {
		t.Fatalf("NewBitmap: %v", err)
	}
	defer bm.Close()

	bm.SetRange(0, 7)
	bm.Singlify()
	if w := bm.Weight(); w != 1 {
		t.Errorf("Weight after Singlify = %d, want 1", w)
	}
}

func TestBitmapDupEqualCompare(t *testing.T) {
	bm, err := hwloc.NewBitmap()
	if err != nil {
		t.Fatalf("NewBitmap: %v", err)
	}
	defer bm.Close()
	bm.Set(2)

	dup, err := bm.Dup()
	if err != nil {
		t.Fatalf("Dup: %v", err)
	}
	defer dup.Close()

	if !bm.Equal(dup) {
		t.Error("dup not equal to source")
	}
	if c := bm.Compare(dup); c != 0 {
		t.Errorf("Compare = %d, want 0", c)
	}

	dup.Set(3)
	if bm.Equal(dup) {
		t.Error("bitmaps equal after diverging")
	}
	if c := bm.Compare(dup); c == 0 {
		t.Error("Compare = 0 for different bitmaps")
	}
}

func TestBitmapFullNot(t *testing.T) {
	full, err := hwloc.NewFullBitmap()
	if err != nil {
		t.Fatalf("NewFullBitmap: %v", err)
	}
	defer full.Close()

	if !full.IsFull() {
		t.Error("full bitmap not full")
	}
	if full.Weight() != -1 {
		t.Errorf("full bitmap weight = %d, want -1", full.Weight())
	}
	if full.Slice() != nil {
		t.Error("Slice of infinite bitmap not nil")
	}

	not, err := full.Not()
	if err != nil {
		t.Fatalf("Not: %v", err)
	}
	defer not.Close()
	if !not.IsZero() {
		t.Error("complement of full bitmap not zero")
	}
}

func TestBitmapCloseIdempotent(t *testing.T) {
	bm, err := hwloc.NewBitmap()
	if err != nil {
		t.Fatalf("NewBitmap: %v", err)
	}
	if err := bm.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := bm.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	// Use after Close reads as an empty set instead of touching freed
	// native memory.
	bm.Set(0)
	if w := bm.Weight(); w != 0 {
		t.Fatalf("Weight after Close = %d, want 0", w)
	}
	if !bm.IsZero() {
		t.Fatal("IsZero after Close = false, want true")
	}
}
