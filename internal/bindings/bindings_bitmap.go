//go:build cgo

package bindings

/*
#include <stdlib.h>
#include <hwloc.h>
*/
import "C"

import (
	"errors"
	"unsafe"
)

// === Bitmap Methods ===

// BitmapAlloc allocates an empty bitmap. Returns nil on allocation
// failure, matching the native contract.
func BitmapAlloc() unsafe.Pointer {
	return unsafe.Pointer(C.hwloc_bitmap_alloc())
}

// BitmapAllocFull allocates a bitmap with all indices set.
func BitmapAllocFull() unsafe.Pointer {
	return unsafe.Pointer(C.hwloc_bitmap_alloc_full())
}

func BitmapFree(bm unsafe.Pointer) {
	C.hwloc_bitmap_free(C.hwloc_bitmap_t(bm))
}

// BitmapListString renders the bitmap in list format ("0-3,8"). The
// native asprintf allocation is freed before returning.
func BitmapListString(bm unsafe.Pointer) (string, error) {
	var cs *C.char
	rc := C.hwloc_bitmap_list_asprintf(&cs, C.hwloc_const_bitmap_t(bm))
	if rc < 0 || cs == nil {
		return "", errors.New("hwloc_bitmap_list_asprintf failed")
	}
	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs), nil
}

func BitmapSet(bm unsafe.Pointer, id uint) {
	C.hwloc_bitmap_set(C.hwloc_bitmap_t(bm), C.uint(id))
}

// BitmapSetRange sets indices begin..end inclusive; end < 0 means
// infinite.
func BitmapSetRange(bm unsafe.Pointer, begin uint, end int) {
	C.hwloc_bitmap_set_range(C.hwloc_bitmap_t(bm), C.uint(begin), C.int(end))
}

func BitmapClr(bm unsafe.Pointer, id uint) {
	C.hwloc_bitmap_clr(C.hwloc_bitmap_t(bm), C.uint(id))
}

func BitmapClrRange(bm unsafe.Pointer, begin uint, end int) {
	C.hwloc_bitmap_clr_range(C.hwloc_bitmap_t(bm), C.uint(begin), C.int(end))
}

func BitmapWeight(bm unsafe.Pointer) int {
	return int(C.hwloc_bitmap_weight(C.hwloc_const_bitmap_t(bm)))
}

func BitmapZero(bm unsafe.Pointer) {
	C.hwloc_bitmap_zero(C.hwloc_bitmap_t(bm))
}

func BitmapIsZero(bm unsafe.Pointer) bool {
	return C.hwloc_bitmap_iszero(C.hwloc_const_bitmap_t(bm)) != 0
}

func BitmapIsSet(bm unsafe.Pointer, id uint) bool {
	return C.hwloc_bitmap_isset(C.hwloc_const_bitmap_t(bm), C.uint(id)) != 0
}

func BitmapSinglify(bm unsafe.Pointer) {
	C.hwloc_bitmap_singlify(C.hwloc_bitmap_t(bm))
}

// BitmapNot writes the complement of bm into result.
func BitmapNot(result, bm unsafe.Pointer) {
	C.hwloc_bitmap_not(C.hwloc_bitmap_t(result), C.hwloc_const_bitmap_t(bm))
}

func BitmapFirst(bm unsafe.Pointer) int {
	return int(C.hwloc_bitmap_first(C.hwloc_const_bitmap_t(bm)))
}

func BitmapLast(bm unsafe.Pointer) int {
	return int(C.hwloc_bitmap_last(C.hwloc_const_bitmap_t(bm)))
}

func BitmapDup(bm unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.hwloc_bitmap_dup(C.hwloc_const_bitmap_t(bm)))
}

func BitmapCompare(a, b unsafe.Pointer) int {
	return int(C.hwloc_bitmap_compare(C.hwloc_const_bitmap_t(a), C.hwloc_const_bitmap_t(b)))
}

func BitmapIsEqual(a, b unsafe.Pointer) bool {
	return C.hwloc_bitmap_isequal(C.hwloc_const_bitmap_t(a), C.hwloc_const_bitmap_t(b)) != 0
}

func BitmapIsFull(bm unsafe.Pointer) bool {
	return C.hwloc_bitmap_isfull(C.hwloc_const_bitmap_t(bm)) != 0
}

// BitmapNext returns the first index strictly greater than prev, or -1.
// Pass prev = -1 to start iteration.
func BitmapNext(bm unsafe.Pointer, prev int) int {
	return int(C.hwloc_bitmap_next(C.hwloc_const_bitmap_t(bm), C.int(prev)))
}
