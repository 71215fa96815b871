//go:build !cgo

package bindings

import (
	"unsafe"
)

// Stub implementations for builds without cgo. These keep the package
// compiling everywhere; entry points that can fail return ErrNotBuilt and
// the rest are no-ops with inert return values.

// Built reports whether the native bindings were compiled in.
func Built() bool { return false }

func GetAPIVersion() int { return 0 }

func TopologyInit() (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func TopologyLoad(unsafe.Pointer) error { return ErrNotBuilt }

func TopologyDestroy(unsafe.Pointer) {}

func TopologySetFlags(unsafe.Pointer, uint64) error { return ErrNotBuilt }

func TopologyGetFlags(unsafe.Pointer) uint64 { return 0 }

func TopologyGetSupport(unsafe.Pointer) Support { return Support{} }

func TopologyGetDepth(unsafe.Pointer) int { return 0 }

func GetTypeDepth(unsafe.Pointer, int) int { return -1 }

func GetDepthType(unsafe.Pointer, int) int { return -1 }

func GetNbobjsByDepth(unsafe.Pointer, int) uint { return 0 }

func GetObjByDepth(unsafe.Pointer, int, uint) unsafe.Pointer { return nil }

func CompareTypes(int, int) int { return CompareUnordered }

func ObjType(unsafe.Pointer) int { return -1 }

func ObjName(unsafe.Pointer) string { return "" }

func ObjDepth(unsafe.Pointer) int { return -1 }

func ObjLogicalIndex(unsafe.Pointer) uint { return 0 }

func ObjOSIndex(unsafe.Pointer) uint { return 0 }

func ObjArity(unsafe.Pointer) uint { return 0 }

func ObjParent(unsafe.Pointer) unsafe.Pointer { return nil }

func ObjChild(unsafe.Pointer, uint) unsafe.Pointer { return nil }

func ObjCPUSet(unsafe.Pointer) unsafe.Pointer { return nil }

func ObjNodeSet(unsafe.Pointer) unsafe.Pointer { return nil }

func ObjTotalMemory(unsafe.Pointer) uint64 { return 0 }

func ObjTypeString(unsafe.Pointer, bool) string { return "" }

func ObjAttrString(unsafe.Pointer, string, bool) string { return "" }

func SetCPUBind(_, _ unsafe.Pointer, _ int) error { return ErrNotBuilt }

func GetCPUBind(_, _ unsafe.Pointer, _ int) error { return ErrNotBuilt }

func GetLastCPULocation(_, _ unsafe.Pointer, _ int) error { return ErrNotBuilt }

func SetProcCPUBind(unsafe.Pointer, int, unsafe.Pointer, int) error { return ErrNotBuilt }

func GetProcCPUBind(unsafe.Pointer, int, unsafe.Pointer, int) error { return ErrNotBuilt }

func GetProcLastCPULocation(unsafe.Pointer, int, unsafe.Pointer, int) error { return ErrNotBuilt }

func SetThreadCPUBind(unsafe.Pointer, uintptr, unsafe.Pointer, int) error { return ErrNotBuilt }

func GetThreadCPUBind(unsafe.Pointer, uintptr, unsafe.Pointer, int) error { return ErrNotBuilt }

func BitmapAlloc() unsafe.Pointer { return nil }

func BitmapAllocFull() unsafe.Pointer { return nil }

func BitmapFree(unsafe.Pointer) {}

func BitmapListString(unsafe.Pointer) (string, error) { return "", ErrNotBuilt }

func BitmapSet(unsafe.Pointer, uint) {}

func BitmapSetRange(unsafe.Pointer, uint, int) {}

func BitmapClr(unsafe.Pointer, uint) {}

func BitmapClrRange(unsafe.Pointer, uint, int) {}

func BitmapWeight(unsafe.Pointer) int { return -1 }

func BitmapZero(unsafe.Pointer) {}

func BitmapIsZero(unsafe.Pointer) bool { return true }

func BitmapIsSet(unsafe.Pointer, uint) bool { return false }

func BitmapSinglify(unsafe.Pointer) {}

func BitmapNot(_, _ unsafe.Pointer) {}

func BitmapFirst(unsafe.Pointer) int { return -1 }

func BitmapLast(unsafe.Pointer) int { return -1 }

func BitmapDup(unsafe.Pointer) unsafe.Pointer { return nil }

func BitmapCompare(_, _ unsafe.Pointer) int { return 0 }

func BitmapIsEqual(_, _ unsafe.Pointer) bool { return false }

func BitmapIsFull(unsafe.Pointer) bool { return false }

func BitmapNext(unsafe.Pointer, int) int { return -1 }
