package hwloc

import "fmt"

// DepthError is a negative sentinel returned by the native depth lookup.
// Values -3 and below are virtual depths: the objects exist but live
// outside the main tree, and the value can still be passed to the
// by-depth queries.
type DepthError int

const (
	// DepthUnknown means no object of the given type exists in the
	// topology.
	DepthUnknown DepthError = -1
	// DepthMultiple means objects of the given type exist at different
	// depths in the topology.
	DepthMultiple DepthError = -2
	// DepthNUMANode is the virtual depth for NUMA nodes.
	DepthNUMANode DepthError = -3
	// DepthBridge is the virtual depth for the bridge object level.
	DepthBridge DepthError = -4
	// DepthPCIDevice is the virtual depth for the PCI device object level.
	DepthPCIDevice DepthError = -5
	// DepthOSDevice is the virtual depth for the software device object
	// level.
	DepthOSDevice DepthError = -6
	// DepthMisc is the virtual depth for Misc objects.
	DepthMisc DepthError = -7
	// DepthMemcache is the virtual depth for memory-side cache objects.
	DepthMemcache DepthError = -8
)

func (e DepthError) Error() string {
	switch e {
	case DepthUnknown:
		return "hwloc: no object of given type in topology"
	case DepthMultiple:
		return "hwloc: objects of given type exist at multiple depths"
	case DepthNUMANode:
		return "hwloc: virtual depth (NUMANode)"
	case DepthBridge:
		return "hwloc: virtual depth (Bridge)"
	case DepthPCIDevice:
		return "hwloc: virtual depth (PCIDevice)"
	case DepthOSDevice:
		return "hwloc: virtual depth (OSDevice)"
	case DepthMisc:
		return "hwloc: virtual depth (Misc)"
	case DepthMemcache:
		return "hwloc: virtual depth (Memcache)"
	default:
		return fmt.Sprintf("hwloc: unknown depth code %d", int(e))
	}
}

// Virtual reports whether the sentinel is a usable virtual depth rather
// than a lookup failure.
func (e DepthError) Virtual() bool {
	return e <= DepthNUMANode && e >= DepthMemcache
}
