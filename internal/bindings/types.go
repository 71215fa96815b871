package bindings

import (
	"errors"
	"math"
)

// CompareUnordered is the value hwloc_compare_types returns for object
// types that do not contain one another (HWLOC_TYPE_UNORDERED, defined as
// INT_MAX by the native header).
const CompareUnordered = math.MaxInt32

// Support is a snapshot of the native hwloc_topology_support flag bits,
// widened to Go bools. Fields cover the discovery and cpubind sections;
// membind stays out of scope.
type Support struct {
	DiscoveryPU         bool
	DiscoveryNUMA       bool
	DiscoveryNUMAMemory bool

	SetThisProcCPUBind   bool
	GetThisProcCPUBind   bool
	SetProcCPUBind       bool
	GetProcCPUBind       bool
	SetThisThreadCPUBind bool
	GetThisThreadCPUBind bool
	SetThreadCPUBind     bool
	GetThreadCPUBind     bool

	GetThisProcLastCPULocation   bool
	GetProcLastCPULocation       bool
	GetThisThreadLastCPULocation bool
}

// ErrNotBuilt reports that the native hwloc bindings were not linked into
// the current binary (cgo disabled). Callers can use this to fall back to
// other topology sources.
var ErrNotBuilt = errors.New("hwloc/internal/bindings: native bindings not built")
