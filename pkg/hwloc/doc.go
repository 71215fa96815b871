// Package hwloc provides Go bindings for the hwloc hardware-locality
// library.
//
// hwloc models the machine as a tree of topology objects (machine,
// packages, caches, cores, processing units, NUMA nodes) and exposes
// bitmap-based CPU sets for querying and enforcing CPU affinity. All of
// that logic lives in the native library; this package declares and
// lightly wraps it.
//
// # Architecture
//
// A Topology is created, optionally configured with flags, then loaded:
//
//	topo, err := hwloc.NewTopology()
//	if err != nil { ... }
//	defer topo.Close()
//	if err := topo.Load(); err != nil { ... }
//
//	depth := topo.Depth()
//	root := topo.ObjectAtDepth(0, 0)
//
// Binding a process to a CPU set:
//
//	set, err := hwloc.NewBitmap()
//	if err != nil { ... }
//	defer set.Close()
//	set.Set(0)
//	err = topo.SetCPUBind(set, hwloc.BindProcess)
//
// # Ownership and Lifetimes
//
// Topologies, topology objects and bitmaps are opaque native handles.
// Objects and the bitmaps reached through them (CPUSet, NodeSet) are owned
// by their topology and become invalid once it is closed. Bitmaps created
// through NewBitmap, NewFullBitmap, Dup or Not are owned by the caller and
// must be released with Close.
//
// # Thread Safety
//
// The native library makes no thread-safety guarantees for concurrent use
// of a single topology. Do not share a Topology across goroutines without
// synchronization.
//
// # Builds Without the Native Library
//
// The package compiles without cgo; in that mode every constructor fails
// with ErrNotBuilt.
package hwloc
