//go:build cgo && windows

package bindings

/*
#include <hwloc.h>
*/
import "C"

import (
	"unsafe"
)

// hwloc_pid_t and hwloc_thread_t are both HANDLE on windows, so pid and
// thread arguments are reinterpreted from their integer forms.

func pidHandle(pid int) C.hwloc_pid_t {
	p := uintptr(pid)
	return *(*C.hwloc_pid_t)(unsafe.Pointer(&p))
}

func threadHandle(thread uintptr) C.hwloc_thread_t {
	return *(*C.hwloc_thread_t)(unsafe.Pointer(&thread))
}

func SetProcCPUBind(topo unsafe.Pointer, pid int, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_set_proc_cpubind(C.hwloc_topology_t(topo), pidHandle(pid), C.hwloc_const_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_set_proc_cpubind", rc)
	}
	return nil
}

func GetProcCPUBind(topo unsafe.Pointer, pid int, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_get_proc_cpubind(C.hwloc_topology_t(topo), pidHandle(pid), C.hwloc_bitmap_t(set), C.int(flags))
	if rc != 0 {
		return rcError("hwloc_get_proc_cpubind", rc)
	}
	return nil
}

func GetProcLastCPULocation(topo unsafe.Pointer, pid int, set unsafe.Pointer, flags int) error {
	rc := C.hwloc_get_proc_last_cpu_location(C.hwloc_topology_t(topo), pidHandle(pid), C.hwloc_bitmap_t(set), C.int(flags))
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
