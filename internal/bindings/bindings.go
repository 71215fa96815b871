//go:build cgo

package bindings

/*
#cgo !windows LDFLAGS: -lhwloc
#cgo windows LDFLAGS: -llibhwloc
#include <stdlib.h>
#include <hwloc.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Built reports whether the native bindings were compiled in.
func Built() bool { return true }

func rcError(call string, rc C.int) error {
	return fmt.Errorf("%s failed: rc=%d", call, int(rc))
}

// GetAPIVersion returns the hwloc API version encoded as
// (major<<16) + (minor<<8) + patch.
func GetAPIVersion() int {
	return int(C.hwloc_get_api_version())
}

// === Topology Creation and Destruction ===

// TopologyInit allocates a topology context. The returned handle must be
// released with TopologyDestroy.
func TopologyInit() (unsafe.Pointer, error) {
	var topo C.hwloc_topology_t
	if rc := C.hwloc_topology_init(&topo); rc != 0 {
		return nil, rcError("hwloc_topology_init", rc)
	}
	return unsafe.Pointer(topo), nil
}

// TopologyLoad performs the actual hardware detection.
func TopologyLoad(topo unsafe.Pointer) error {
	if rc := C.hwloc_topology_load(C.hwloc_topology_t(topo)); rc != 0 {
		return rcError("hwloc_topology_load", rc)
	}
	return nil
}

func TopologyDestroy(topo unsafe.Pointer) {
	C.hwloc_topology_destroy(C.hwloc_topology_t(topo))
}

// === Topology Detection Configuration and Query ===

func TopologySetFlags(topo unsafe.Pointer, flags uint64) error {
	if rc := C.hwloc_topology_set_flags(C.hwloc_topology_t(topo), C.ulong(flags)); rc != 0 {
		return rcError("hwloc_topology_set_flags", rc)
	}
	return nil
}

func TopologyGetFlags(topo unsafe.Pointer) uint64 {
	return uint64(C.hwloc_topology_get_flags(C.hwloc_topology_t(topo)))
}

// TopologyGetSupport copies the native support struct into a Go snapshot.
// The native struct is owned by the topology and stays valid until destroy;
// copying here keeps that lifetime concern out of the public API.
func TopologyGetSupport(topo unsafe.Pointer) Support {
	s := C.hwloc_topology_get_support(C.hwloc_topology_t(topo))
	if s == nil {
		return Support{}
	}
	return Support{
		DiscoveryPU:         s.discovery.pu != 0,
		DiscoveryNUMA:       s.discovery.numa != 0,
		DiscoveryNUMAMemory: s.discovery.numa_memory != 0,

		SetThisProcCPUBind:   s.cpubind.set_thisproc_cpubind != 0,
		GetThisProcCPUBind:   s.cpubind.get_thisproc_cpubind != 0,
		SetProcCPUBind:       s.cpubind.set_proc_cpubind != 0,
		GetProcCPUBind:       s.cpubind.get_proc_cpubind != 0,
		SetThisThreadCPUBind: s.cpubind.set_thisthread_cpubind != 0,
		GetThisThreadCPUBind: s.cpubind.get_thisthread_cpubind != 0,
		SetThreadCPUBind:     s.cpubind.set_thread_cpubind != 0,
		GetThreadCPUBind:     s.cpubind.get_thread_cpubind != 0,

		GetThisProcLastCPULocation:   s.cpubind.get_thisproc_last_cpu_location != 0,
		GetProcLastCPULocation:       s.cpubind.get_proc_last_cpu_location != 0,
		GetThisThreadLastCPULocation: s.cpubind.get_thisthread_last_cpu_location != 0,
	}
}

// === Object levels, depths and types ===

func TopologyGetDepth(topo unsafe.Pointer) int {
	return int(C.hwloc_topology_get_depth(C.hwloc_topology_t(topo)))
}

// GetTypeDepth returns the depth for the given object type, or one of the
// negative HWLOC_TYPE_DEPTH_* sentinels.
func GetTypeDepth(topo unsafe.Pointer, objType int) int {
	return int(C.hwloc_get_type_depth(C.hwloc_topology_t(topo), C.hwloc_obj_type_t(objType)))
}

func GetDepthType(topo unsafe.Pointer, depth int) int {
	return int(C.hwloc_get_depth_type(C.hwloc_topology_t(topo), C.int(depth)))
}

func GetNbobjsByDepth(topo unsafe.Pointer, depth int) uint {
	return uint(C.hwloc_get_nbobjs_by_depth(C.hwloc_topology_t(topo), C.int(depth)))
}

// GetObjByDepth returns the idx-th object at the given depth, or nil.
func GetObjByDepth(topo unsafe.Pointer, depth int, idx uint) unsafe.Pointer {
	return unsafe.Pointer(C.hwloc_get_obj_by_depth(C.hwloc_topology_t(topo), C.int(depth), C.uint(idx)))
}

// CompareTypes delegates the partial ordering of two object types to the
// native library: <0 if a contains b, 0 if equal, >0 if a is contained in
// b, CompareUnordered otherwise.
func CompareTypes(a, b int) int {
	return int(C.hwloc_compare_types(C.hwloc_obj_type_t(a), C.hwloc_obj_type_t(b)))
}
