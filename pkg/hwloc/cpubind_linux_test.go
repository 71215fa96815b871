//go:build cgo && linux

package hwloc_test

import (
	"testing"

	"golang.org/x/sys/unix"

	"github.com/numalab/hwloc-go/pkg/hwloc"
)

// The kernel's own view of the process affinity mask must agree with what
// hwloc reports through the binding API.
func TestCPUBindMatchesSchedGetaffinity(t *testing.T) {
	topo := loadTopology(t)

	set, err := topo.CPUBind(hwloc.BindProcess)
	if err != nil {
		t.Fatalf("CPUBind: %v", err)
	}
	defer set.Close()

	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		t.Fatalf("SchedGetaffinity: %v", err)
	}

	if set.Weight() != mask.Count() {
		t.Fatalf("hwloc reports %d CPUs, kernel reports %d", set.Weight(), mask.Count())
	}
	for _, id := range set.Slice() {
		if !mask.IsSet(int(id)) {
			t.Errorf("CPU %d in hwloc binding but not in kernel mask", id)
		}
	}
}
