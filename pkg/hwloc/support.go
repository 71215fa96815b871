package hwloc

import "github.com/numalab/hwloc-go/internal/bindings"

// Support reports which hwloc features actually work on the current
// system for a loaded topology. A false flag means the corresponding call
// will fail rather than silently misbehave.
type Support struct {
	Discovery DiscoverySupport
	CPUBind   CPUBindSupport
}

// DiscoverySupport covers topology detection.
type DiscoverySupport struct {
	// PU reports whether processing units are detected.
	PU bool
	// NUMA reports whether NUMA nodes are detected.
	NUMA bool
	// NUMAMemory reports whether NUMA memory sizes are detected.
	NUMAMemory bool
}

// CPUBindSupport covers the CPU binding calls.
type CPUBindSupport struct {
	SetCurrentProcess bool
	GetCurrentProcess bool
	SetProcess        bool
	GetProcess        bool
	SetCurrentThread  bool
	GetCurrentThread  bool
	SetThread         bool
	GetThread         bool

	GetCurrentProcessLastLocation bool
	GetProcessLastLocation        bool
	GetCurrentThreadLastLocation  bool
}

func supportFromBindings(s bindings.Support) Support {
	return Support{
		Discovery: DiscoverySupport{
			PU:         s.DiscoveryPU,
			NUMA:       s.DiscoveryNUMA,
			NUMAMemory: s.DiscoveryNUMAMemory,
		},
		CPUBind: CPUBindSupport{
			SetCurrentProcess: s.SetThisProcCPUBind,
			GetCurrentProcess: s.GetThisProcCPUBind,
			SetProcess:        s.SetProcCPUBind,
			GetProcess:        s.GetProcCPUBind,
			SetCurrentThread:  s.SetThisThreadCPUBind,
			GetCurrentThread:  s.GetThisThreadCPUBind,
			SetThread:         s.SetThreadCPUBind,
			GetThread:         s.GetThreadCPUBind,

			GetCurrentProcessLastLocation: s.GetThisProcLastCPULocation,
			GetProcessLastLocation:        s.GetProcLastCPULocation,
			GetCurrentThreadLastLocation:  s.GetThisThreadLastCPULocation,
		},
	}
}
