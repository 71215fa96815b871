package hwloc

import (
	"github.com/numalab/hwloc-go/internal/bindings"
)

// ObjectType mirrors hwloc_obj_type_t. The integer values are the native
// contract and must stay in declaration order.
type ObjectType int

const (
	// Machine is the root of every topology: a set of processors and
	// memory with cache coherency. Its parent is always nil.
	Machine ObjectType = iota
	// Package is a physical package, what goes into a socket.
	Package
	// Core is a computation unit, possibly shared by several logical
	// processors.
	Core
	// PU is a processing unit, or (logical) processor. Objects of this
	// kind are always reported and can be used as a fallback when others
	// are filtered out.
	PU
	// L1Cache through L5Cache are data or unified caches by level.
	L1Cache
	L2Cache
	L3Cache
	L4Cache
	L5Cache
	// L1ICache through L3ICache are instruction caches, filtered out by
	// default.
	L1ICache
	L2ICache
	L3ICache
	// Group objects aggregate others for affinity purposes, e.g. NUMA
	// nodes grouped by distance. Ignored when they bring no structure.
	Group
	// NUMANode is a set of processors around memory which those
	// processors can directly access.
	NUMANode
	// Bridge connects the host or an I/O bus to another I/O bus. Only
	// present when I/O discovery is enabled; bridges have nil CPU and
	// node sets.
	Bridge
	// PCIDevice objects have neither CPU sets nor node sets and require
	// I/O discovery.
	PCIDevice
	// OSDevice objects are operating-system devices; they require I/O
	// discovery and carry no CPU or node sets.
	OSDevice
	// Misc objects carry no particular meaning and may be added by the
	// application or by hwloc for things like memory modules.
	Misc
	// Memcache is a memory-side cache in front of a specific NUMA node.
	// It lives at the virtual DepthMemcache instead of a normal depth.
	Memcache
	// Die is a subpart of the physical package containing multiple cores.
	Die
	// TypeMax is an internal sentinel value.
	TypeMax
)

func (t ObjectType) String() string {
	switch t {
	case Machine:
		return "Machine"
	case Package:
		return "Package"
	case Core:
		return "Core"
	case PU:
		return "PU"
	case L1Cache:
		return "L1Cache"
	case L2Cache:
		return "L2Cache"
	case L3Cache:
		return "L3Cache"
	case L4Cache:
		return "L4Cache"
	case L5Cache:
		return "L5Cache"
	case L1ICache:
		return "L1ICache"
	case L2ICache:
		return "L2ICache"
	case L3ICache:
		return "L3ICache"
	case Group:
		return "Group"
	case NUMANode:
		return "NUMANode"
	case Bridge:
		return "Bridge"
	case PCIDevice:
		return "PCIDevice"
	case OSDevice:
		return "OSDevice"
	case Misc:
		return "Misc"
	case Memcache:
		return "Memcache"
	case Die:
		return "Die"
	default:
		return "unknown"
	}
}

// Ordering is the result of comparing two object types.
type Ordering int

const (
	OrderLess    Ordering = -1
	OrderEqual   Ordering = 0
	OrderGreater Ordering = 1
	// OrderUnordered is returned for type pairs that do not contain one
	// another (e.g. two I/O types).
	OrderUnordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case OrderLess:
		return "less"
	case OrderEqual:
		return "equal"
	case OrderGreater:
		return "greater"
	default:
		return "unordered"
	}
}

// Compare delegates the partial ordering of object types to the native
// library:
//
//   - A equals B when they are the same type.
//   - A is less than B when objects of type A include objects of type B.
//   - A is greater than B when objects of type A are included in B.
//
// It can help to think of it as comparing relative depths: Machine is less
// than PU since the machine contains processing units.
func (t ObjectType) Compare(other ObjectType) Ordering {
	c := bindings.CompareTypes(int(t), int(other))
	switch {
	case c == bindings.CompareUnordered:
		return OrderUnordered
	case c < 0:
		return OrderLess
	case c == 0:
		return OrderEqual
	default:
		return OrderGreater
	}
}

// Contains reports whether objects of type t include objects of type
// other in the topology tree.
func (t ObjectType) Contains(other ObjectType) bool {
	return t.Compare(other) == OrderLess
}

// CacheType mirrors hwloc_obj_cache_type_t.
type CacheType int

const (
	CacheUnified CacheType = iota
	CacheData
	CacheInstruction
)

func (t CacheType) String() string {
	switch t {
	case CacheUnified:
		return "Unified"
	case CacheData:
		return "Data"
	case CacheInstruction:
		return "Instruction"
	default:
		return "unknown"
	}
}

// BridgeType mirrors hwloc_obj_bridge_type_t.
type BridgeType int

const (
	BridgeHost BridgeType = iota
	BridgePCI
)

func (t BridgeType) String() string {
	switch t {
	case BridgeHost:
		return "Host"
	case BridgePCI:
		return "PCI"
	default:
		return "unknown"
	}
}

// OSDeviceType mirrors hwloc_obj_osdev_type_t.
type OSDeviceType int

const (
	OSDeviceBlock OSDeviceType = iota
	OSDeviceGPU
	OSDeviceNetwork
	OSDeviceOpenFabrics
	OSDeviceDMA
	OSDeviceCoprocessor
)

func (t OSDeviceType) String() string {
	switch t {
	case OSDeviceBlock:
		return "Block"
	case OSDeviceGPU:
		return "GPU"
	case OSDeviceNetwork:
		return "Network"
	case OSDeviceOpenFabrics:
		return "OpenFabrics"
	case OSDeviceDMA:
		return "DMA"
	case OSDeviceCoprocessor:
		return "Coprocessor"
	default:
		return "unknown"
	}
}
