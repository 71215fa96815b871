//go:build cgo && !windows

package bindings

/*
#include <hwloc.h>
*/
import "C"

import (
	"unsafe"
)

// hwloc_pid_t is pid_t and hwloc_thread_t is pthread_t on this platform.
// Thread handles travel as uintptr so that the stub and windows variants
// share one exported signature; pthread_t is an integer on linux and a
// pointer on darwin, so the conversion goes through a same-size
// reinterpretation rather than a value conversion.

func threadHandle(thread uintptr) C.hwloc_thread_t {
	return *(*C.hwloc_thread_t)(unsafe.Pointer(&thread))
}

func SetProcCPUBind(topo unsafe.Pointer, pid int, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_set_proc_cpubind(C.hwloc_topology_t(topo), C.hwloc_pid_t(pid), C.hwloc_const_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_set_proc_cpubind", rc)
	}
	return nil
}

func GetProcCPUBind(topo unsafe.Pointer, pid int, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_get_proc_cpubind(C.hwloc_topology_t(topo), C.hwloc_pid_t(pid), C.hwloc_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_get_proc_cpubind", rc)
	}
	return nil
}

func GetProcLastCPULocation(topo unsafe.Pointer, pid int, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_get_proc_last_cpu_location(C.hwloc_topology_t(topo), C.hwloc_pid_t(pid), C.hwloc_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_get_proc_last_cpu_location", rc)
	}
	return nil
}

func SetThreadCPUBind(topo unsafe.Pointer, thread uintptr, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_set_thread_cpubind(C.hwloc_topology_t(topo), threadHandle(thread), C.hwloc_const_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_set_thread_cpubind", rc)
	}
	return nil
}

func GetThreadCPUBind(topo unsafe.Pointer, thread uintptr, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_get_thread_cpubind(C.hwloc_topology_t(topo), threadHandle(thread), C.hwloc_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_get_thread_cpubind", rc)
	}
	return nil
}
