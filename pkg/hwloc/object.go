package hwloc

import (
	"unsafe"

	"github.com/numalab/hwloc-go/internal/bindings"
)

// Object is a node in the topology tree: machine, package, core, PU,
// cache, NUMA node, etc. Objects are owned by their topology and become
// invalid once it is closed.
type Object struct {
	ptr unsafe.Pointer
}

func objectFrom(ptr unsafe.Pointer) *Object {
	if ptr == nil {
		return nil
	}
	return &Object{ptr: ptr}
}

// Type returns the object's type.
func (o *Object) Type() ObjectType {
	return ObjectType(bindings.ObjType(o.ptr))
}

// Name returns the object name, or "" when the native library reports
// none.
func (o *Object) Name() string {
	return bindings.ObjName(o.ptr)
}

// Depth returns the object's vertical index in the topology tree.
// Objects outside the main tree (NUMA nodes, I/O, Misc, Memcache) report
// their virtual depth.
func (o *Object) Depth() int {
	return bindings.ObjDepth(o.ptr)
}

// LogicalIndex is the horizontal index among objects of the same type and
// depth, in the order hwloc reports them.
func (o *Object) LogicalIndex() uint {
	return bindings.ObjLogicalIndex(o.ptr)
}

// OSIndex is the index reported by the operating system, e.g. the PU or
// NUMA node number. Not all objects have one.
func (o *Object) OSIndex() uint {
	return bindings.ObjOSIndex(o.ptr)
}

// Arity returns the number of normal children.
func (o *Object) Arity() uint {
	return bindings.ObjArity(o.ptr)
}

// Parent returns the parent object, or nil for the topology root.
func (o *Object) Parent() *Object {
	return objectFrom(bindings.ObjParent(o.ptr))
}

// Child returns the i-th normal child, or nil when out of range.
func (o *Object) Child(i uint) *Object {
	return objectFrom(bindings.ObjChild(o.ptr, i))
}

// Children returns the normal children in order.
func (o *Object) Children() []*Object {
	n := o.Arity()
	if n == 0 {
		return nil
	}
	children := make([]*Object, 0, n)
	for i := uint(0); i < n; i++ {
		children = append(children, o.Child(i))
	}
	return children
}

// CPUSet returns the set of PUs covered by the object, borrowed from the
// topology. Nil for I/O and Misc objects, which have no CPU sets.
func (o *Object) CPUSet() *Bitmap {
	return borrowedBitmap(bindings.ObjCPUSet(o.ptr))
}

// NodeSet returns the set of NUMA nodes covered by the object, borrowed
// from the topology. Nil for I/O and Misc objects.
func (o *Object) NodeSet() *Bitmap {
	return borrowedBitmap(bindings.ObjNodeSet(o.ptr))
}

// TotalMemory returns the total memory in bytes covered by the object.
func (o *Object) TotalMemory() uint64 {
	return bindings.ObjTotalMemory(o.ptr)
}

// TypeString renders the type the way the native library prints it, e.g.
// "L2" or, verbosely, "L2Cache".
func (o *Object) TypeString(verbose bool) string {
	return bindings.ObjTypeString(o.ptr, verbose)
}

// AttrString renders object attributes (cache size, line size, ...)
// joined by separator.
func (o *Object) AttrString(separator string, verbose bool) string {
	return bindings.ObjAttrString(o.ptr, separator, verbose)
}

// String combines the native type and attribute renderings.
func (o *Object) String() string {
	attrs := o.AttrString(" ", false)
	if attrs == "" {
		return o.TypeString(false)
	}
	return o.TypeString(false) + " (" + attrs + ")"
}
