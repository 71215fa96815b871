//go:build cgo

package bindings

/*
#include <hwloc.h>
*/
import "C"

import (
	"unsafe"
)

// === CPU Binding (current process or thread) ===

// SetCPUBind binds the current process or thread to the given cpuset.
func SetCPUBind(topo, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_set_cpubind(C.hwloc_topology_t(topo), C.hwloc_const_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_set_cpubind", rc)
	}
	return nil
}

// GetCPUBind writes the current binding into set.
func GetCPUBind(topo, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_get_cpubind(C.hwloc_topology_t(topo), C.hwloc_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_get_cpubind", rc)
	}
	return nil
}

// GetLastCPULocation writes the PUs where the current process or thread
// last ran into set.
func GetLastCPULocation(topo, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_get_last_cpu_location(C.hwloc_topology_t(topo), C.hwloc_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_get_last_cpu_location", rc)
	}
	return nil
}
