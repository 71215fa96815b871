package hwloc

import (
	"unsafe"

	"github.com/numalab/hwloc-go/internal/bindings"
)

// Topology is an opaque handle to a native hwloc topology context. The
// zero value is not usable; create one with NewTopology.
type Topology struct {
	ptr    unsafe.Pointer
	closed bool
}

// NewTopology allocates a topology context. Configure flags before
// calling Load; release with Close.
func NewTopology() (*Topology, error) {
	ptr, err := bindings.TopologyInit()
	if err != nil {
		return nil, remapError("NewTopology", err)
	}
	return &Topology{ptr: ptr}, nil
}

// Load performs the actual topology detection.
func (t *Topology) Load() error {
	if t.closed {
		return &Error{Op: "Load", Err: ErrTopologyClosed}
	}
	if err := bindings.TopologyLoad(t.ptr); err != nil {
		return remapError("Load", err)
	}
	return nil
}

// Close destroys the native topology context. The method is idempotent,
// returning ErrTopologyClosed when called twice. All objects and borrowed
// bitmaps obtained from the topology become invalid.
func (t *Topology) Close() error {
	if t == nil {
		return nil
	}
	if t.closed {
		return ErrTopologyClosed
	}
	bindings.TopologyDestroy(t.ptr)
	t.closed = true
	t.ptr = nil
	return nil
}

// SetFlags replaces the detection flags. Must be called before Load.
func (t *Topology) SetFlags(flags ...TopologyFlag) error {
	if t.closed {
		return &Error{Op: "SetFlags", Err: ErrTopologyClosed}
	}
	if err := bindings.TopologySetFlags(t.ptr, flagsToMask(flags)); err != nil {
		return remapError("SetFlags", err)
	}
	return nil
}

// Flags returns the currently set detection flags.
func (t *Topology) Flags() []TopologyFlag {
	if t.closed {
		return nil
	}
	return maskToFlags(bindings.TopologyGetFlags(t.ptr))
}

// Support returns a snapshot of the feature support reported by the
// native library for this topology.
func (t *Topology) Support() Support {
	if t.closed {
		return Support{}
	}
	return supportFromBindings(bindings.TopologyGetSupport(t.ptr))
}

// Depth returns the depth of the topology tree. A depth of one means a
// single level: the whole machine.
func (t *Topology) Depth() int {
	if t.closed {
		return 0
	}
	return bindings.TopologyGetDepth(t.ptr)
}

// DepthForType returns the depth at which objects of the given type sit.
// The error, when non-nil, is a DepthError: DepthUnknown or DepthMultiple
// for lookup failures, or a virtual depth for types living outside the
// main tree (NUMA nodes, I/O, Misc, Memcache). Virtual depths remain
// valid arguments to the by-depth queries.
func (t *Topology) DepthForType(objType ObjectType) (int, error) {
	if t.closed {
		return 0, &Error{Op: "DepthForType", Err: ErrTopologyClosed}
	}
	d := bindings.GetTypeDepth(t.ptr, int(objType))
	if d < 0 {
		return 0, DepthError(d)
	}
	return d, nil
}

// TypeAtDepth returns the type of objects at the given depth. Virtual
// depths (negative DepthError values) are accepted.
func (t *Topology) TypeAtDepth(depth int) ObjectType {
	if t.closed {
		return TypeMax
	}
	return ObjectType(bindings.GetDepthType(t.ptr, depth))
}

// NumObjectsAtDepth returns the number of objects at the given depth.
func (t *Topology) NumObjectsAtDepth(depth int) uint {
	if t.closed {
		return 0
	}
	return bindings.GetNbobjsByDepth(t.ptr, depth)
}

// ObjectAtDepth returns the idx-th object at the given depth, or nil when
// out of range. The object is owned by the topology.
func (t *Topology) ObjectAtDepth(depth int, idx uint) *Object {
	if t.closed {
		return nil
	}
	return objectFrom(bindings.GetObjByDepth(t.ptr, depth, idx))
}

// NumObjects returns the number of objects of the given type, resolving
// the type's depth first. Returns 0 when the type is absent or spread
// over multiple depths.
func (t *Topology) NumObjects(objType ObjectType) uint {
	depth, err := t.DepthForType(objType)
	if err != nil {
		de, ok := err.(DepthError)
		if !ok || !de.Virtual() {
			return 0
		}
		depth = int(de)
	}
	return t.NumObjectsAtDepth(depth)
}
