//go:build cgo

package bindings

/*
#include <stdlib.h>
#include <hwloc.h>
*/
import "C"

import (
	"unsafe"
)

// Topology objects are owned by their topology; none of the accessors
// below transfer ownership and none of the returned pointers may be used
// after the topology is destroyed.

func ObjType(obj unsafe.Pointer) int {
	return int((*C.struct_hwloc_obj)(obj)._type)
}

func ObjName(obj unsafe.Pointer) string {
	o := (*C.struct_hwloc_obj)(obj)
	if o.name == nil {
		return ""
	}
	return C.GoString(o.name)
}

func ObjDepth(obj unsafe.Pointer) int {
	return int((*C.struct_hwloc_obj)(obj).depth)
}

func ObjLogicalIndex(obj unsafe.Pointer) uint {
	return uint((*C.struct_hwloc_obj)(obj).logical_index)
}

func ObjOSIndex(obj unsafe.Pointer) uint {
	return uint((*C.struct_hwloc_obj)(obj).os_index)
}

func ObjArity(obj unsafe.Pointer) uint {
	return uint((*C.struct_hwloc_obj)(obj).arity)
}

func ObjParent(obj unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer((*C.struct_hwloc_obj)(obj).parent)
}

// ObjChild returns the i-th normal child, or nil when out of range.
func ObjChild(obj unsafe.Pointer, i uint) unsafe.Pointer {
	o := (*C.struct_hwloc_obj)(obj)
	if i >= uint(o.arity) {
		return nil
	}
	children := unsafe.Slice(o.children, uint(o.arity))
	return unsafe.Pointer(children[i])
}

// ObjCPUSet returns the object's cpuset. The bitmap is owned by the
// topology; callers must not free it.
func ObjCPUSet(obj unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer((*C.struct_hwloc_obj)(obj).cpuset)
}

// ObjNodeSet returns the object's nodeset, owned by the topology.
func ObjNodeSet(obj unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer((*C.struct_hwloc_obj)(obj).nodeset)
}

// ObjTotalMemory returns the total memory in bytes covered by the object.
func ObjTotalMemory(obj unsafe.Pointer) uint64 {
	return uint64((*C.struct_hwloc_obj)(obj).total_memory)
}

const objStringBufferSize = 128

// ObjTypeString renders the object type via hwloc_obj_type_snprintf.
func ObjTypeString(obj unsafe.Pointer, verbose bool) string {
	buf := (*C.char)(C.malloc(objStringBufferSize))
	if buf == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(buf))

	v := C.int(0)
	if verbose {
		v = 1
	}
	C.hwloc_obj_type_snprintf(buf, objStringBufferSize, (*C.struct_hwloc_obj)(obj), v)
	return C.GoString(buf)
}

// ObjAttrString renders the object attributes via hwloc_obj_attr_snprintf.
func ObjAttrString(obj unsafe.Pointer, separator string, verbose bool) string {
	buf := (*C.char)(C.malloc(objStringBufferSize))
	if buf == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(buf))

	sep := C.CString(separator)
	defer C.free(unsafe.Pointer(sep))

	v := C.int(0)
	if verbose {
		v = 1
	}
	C.hwloc_obj_attr_snprintf(buf, objStringBufferSize, (*C.struct_hwloc_obj)(obj), sep, v)
	return C.GoString(buf)
}
