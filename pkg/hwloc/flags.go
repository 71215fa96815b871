package hwloc

// TopologyFlag alters topology detection when set before Load. The
// integer values are the native contract.
type TopologyFlag uint64

const (
	// FlagIncludeDisallowed detects the whole system even when some parts
	// are disallowed for the current process.
	FlagIncludeDisallowed TopologyFlag = 1
	// FlagIsThisSystem asserts the topology matches the current system
	// even when loaded from XML or a synthetic description.
	FlagIsThisSystem TopologyFlag = 2
	// FlagThisSystemAllowedResources retrieves the allowed resource sets
	// from the current system instead of the topology source.
	FlagThisSystemAllowedResources TopologyFlag = 4
)

func (f TopologyFlag) String() string {
	switch f {
	case FlagIncludeDisallowed:
		return "IncludeDisallowed"
	case FlagIsThisSystem:
		return "IsThisSystem"
	case FlagThisSystemAllowedResources:
		return "ThisSystemAllowedResources"
	default:
		return "unknown"
	}
}

// Value returns the native integer value of the flag.
func (f TopologyFlag) Value() uint64 {
	return uint64(f)
}

// TopologyFlagFrom maps a native integer value back to a flag.
func TopologyFlagFrom(v uint64) (TopologyFlag, bool) {
	switch TopologyFlag(v) {
	case FlagIncludeDisallowed, FlagIsThisSystem, FlagThisSystemAllowedResources:
		return TopologyFlag(v), true
	default:
		return 0, false
	}
}

var allTopologyFlags = []TopologyFlag{
	FlagIncludeDisallowed,
	FlagIsThisSystem,
	FlagThisSystemAllowedResources,
}

func flagsToMask(flags []TopologyFlag) uint64 {
	var mask uint64
	for _, f := range flags {
		mask |= f.Value()
	}
	return mask
}

func maskToFlags(mask uint64) []TopologyFlag {
	var flags []TopologyFlag
	for _, f := range allTopologyFlags {
		if mask&f.Value() != 0 {
			flags = append(flags, f)
		}
	}
	return flags
}
