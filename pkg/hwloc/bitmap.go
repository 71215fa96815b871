package hwloc

import (
	"unsafe"

	"github.com/numalab/hwloc-go/internal/bindings"
)

// Bitmap is a set of integer indices (CPU or NUMA node IDs) backed by a
// native hwloc bitmap. Bitmaps obtained from NewBitmap, NewFullBitmap,
// Dup or Not are owned by the caller and must be released with Close;
// bitmaps reached through topology objects are borrowed and Close is a
// no-op on them.
//
// After Close, mutators are no-ops, queries report an empty set, and
// Dup/Not fail with ErrBitmapClosed.
type Bitmap struct {
	ptr      unsafe.Pointer
	borrowed bool
}

// NewBitmap allocates an empty bitmap.
func NewBitmap() (*Bitmap, error) {
	if !bindings.Built() {
		return nil, remapError("NewBitmap", bindings.ErrNotBuilt)
	}
	ptr := bindings.BitmapAlloc()
	if ptr == nil {
		return nil, &Error{Op: "NewBitmap", Err: ErrAllocFailed}
	}
	return &Bitmap{ptr: ptr}, nil
}

// NewFullBitmap allocates a bitmap with all indices set.
func NewFullBitmap() (*Bitmap, error) {
	if !bindings.Built() {
		return nil, remapError("NewFullBitmap", bindings.ErrNotBuilt)
	}
	ptr := bindings.BitmapAllocFull()
	if ptr == nil {
		return nil, &Error{Op: "NewFullBitmap", Err: ErrAllocFailed}
	}
	return &Bitmap{ptr: ptr}, nil
}

// borrowedBitmap wraps a topology-owned native bitmap. Returns nil for a
// nil pointer, which the native library uses for objects without sets.
func borrowedBitmap(ptr unsafe.Pointer) *Bitmap {
	if ptr == nil {
		return nil
	}
	return &Bitmap{ptr: ptr, borrowed: true}
}

func (b *Bitmap) closed() bool {
	return b == nil || b.ptr == nil
}

// Close frees the native bitmap. Safe to call on nil and borrowed
// bitmaps, and idempotent.
func (b *Bitmap) Close() error {
	if b.closed() || b.borrowed {
		return nil
	}
	bindings.BitmapFree(b.ptr)
	b.ptr = nil
	return nil
}

// Dup returns a caller-owned copy of the bitmap.
func (b *Bitmap) Dup() (*Bitmap, error) {
	if b.closed() {
		return nil, &Error{Op: "Dup", Err: ErrBitmapClosed}
	}
	ptr := bindings.BitmapDup(b.ptr)
	if ptr == nil {
		return nil, &Error{Op: "Dup", Err: ErrAllocFailed}
	}
	return &Bitmap{ptr: ptr}, nil
}

// Set adds the index to the bitmap.
func (b *Bitmap) Set(id uint) {
	if b.closed() {
		return
	}
	bindings.BitmapSet(b.ptr, id)
}

// SetRange adds indices begin..end inclusive; end < 0 means all indices
// from begin onward.
func (b *Bitmap) SetRange(begin uint, end int) {
	if b.closed() {
		return
	}
	bindings.BitmapSetRange(b.ptr, begin, end)
}

// Clear removes the index from the bitmap.
func (b *Bitmap) Clear(id uint) {
	if b.closed() {
		return
	}
	bindings.BitmapClr(b.ptr, id)
}

// ClearRange removes indices begin..end inclusive; end < 0 means all
// indices from begin onward.
func (b *Bitmap) ClearRange(begin uint, end int) {
	if b.closed() {
		return
	}
	bindings.BitmapClrRange(b.ptr, begin, end)
}

// Zero empties the bitmap.
func (b *Bitmap) Zero() {
	if b.closed() {
		return
	}
	bindings.BitmapZero(b.ptr)
}

// Weight returns the number of set indices, or -1 for infinitely full
// bitmaps.
func (b *Bitmap) Weight() int {
	if b.closed() {
		return 0
	}
	return bindings.BitmapWeight(b.ptr)
}

// IsZero reports whether no index is set.
func (b *Bitmap) IsZero() bool {
	if b.closed() {
		return true
	}
	return bindings.BitmapIsZero(b.ptr)
}

// IsFull reports whether all indices are set.
func (b *Bitmap) IsFull() bool {
	if b.closed() {
		return false
	}
	return bindings.BitmapIsFull(b.ptr)
}

// IsSet reports whether the index is set.
func (b *Bitmap) IsSet(id uint) bool {
	if b.closed() {
		return false
	}
	return bindings.BitmapIsSet(b.ptr, id)
}

// Singlify keeps a single index set, clearing the rest. Useful to avoid
// migration after binding.
func (b *Bitmap) Singlify() {
	if b.closed() {
		return
	}
	bindings.BitmapSinglify(b.ptr)
}

// Not returns a caller-owned complement of the bitmap.
func (b *Bitmap) Not() (*Bitmap, error) {
	if b.closed() {
		return nil, &Error{Op: "Not", Err: ErrBitmapClosed}
	}
	result, err := NewBitmap()
	if err != nil {
		return nil, err
	}
	bindings.BitmapNot(result.ptr, b.ptr)
	return result, nil
}

// First returns the smallest set index, or -1 when empty.
func (b *Bitmap) First() int {
	if b.closed() {
		return -1
	}
	return bindings.BitmapFirst(b.ptr)
}

// Last returns the largest set index, or -1 when empty or infinitely
// full.
func (b *Bitmap) Last() int {
	if b.closed() {
		return -1
	}
	return bindings.BitmapLast(b.ptr)
}

// Next returns the first set index strictly greater than prev, or -1.
// Pass prev = -1 to start iteration.
func (b *Bitmap) Next(prev int) int {
	if b.closed() {
		return -1
	}
	return bindings.BitmapNext(b.ptr, prev)
}

// Compare orders two bitmaps by their highest differing index. Returns 0
// for equal bitmaps; closed bitmaps order before open ones.
func (b *Bitmap) Compare(other *Bitmap) int {
	if b.closed() || other.closed() {
		switch {
		case b.closed() && other.closed():
			return 0
		case b.closed():
			return -1
		default:
			return 1
		}
	}
	return bindings.BitmapCompare(b.ptr, other.ptr)
}

// Equal reports whether both bitmaps hold the same indices.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.closed() || other.closed() {
		return b.closed() && other.closed()
	}
	return bindings.BitmapIsEqual(b.ptr, other.ptr)
}

// Slice returns the set indices in increasing order. Returns nil for an
// infinitely full bitmap.
func (b *Bitmap) Slice() []uint {
	if b.Weight() < 0 {
		return nil
	}
	var ids []uint
	for id := b.Next(-1); id != -1; id = b.Next(id) {
		ids = append(ids, uint(id))
	}
	return ids
}

// String renders the bitmap in list format, e.g. "0-3,8".
func (b *Bitmap) String() string {
	if b.closed() {
		return ""
	}
	s, err := bindings.BitmapListString(b.ptr)
	if err != nil {
		return ""
	}
	return s
}
