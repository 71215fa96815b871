//go:build cgo && !windows

package hwloc_test

import (
	"errors"
	"testing"

	"github.com/numalab/hwloc-go/pkg/hwloc"
)

func loadTopology(t *testing.T) *hwloc.Topology {
	t.Helper()
	topo, err := hwloc.NewTopology()
	if err != nil {
		t.Fatalf("NewTopology: %v", err)
	}
	t.Cleanup(func() {
		_ = topo.Close()
	})
	if err := topo.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return topo
}

func TestTopologyLoadNative(t *testing.T) {
	topo := loadTopology(t)

	depth := topo.Depth()
	if depth < 1 {
		t.Fatalf("Depth() = %d, want >= 1", depth)
	}

	root := topo.ObjectAtDepth(0, 0)
	if root == nil {
		t.Fatal("no object at depth 0")
	}
	if root.Type() != hwloc.Machine {
		t.Errorf("root type = %v, want Machine", root.Type())
	}
	if root.Parent() != nil {
		t.Error("machine root has a parent")
	}

	// Every level holds at least one object of a consistent type.
	for d := 0; d < depth; d++ {
		n := topo.NumObjectsAtDepth(d)
		if n == 0 {
			t.Fatalf("depth %d has no objects", d)
		}
		levelType := topo.TypeAtDepth(d)
		for i := uint(0); i < n; i++ {
			obj := topo.ObjectAtDepth(d, i)
			if obj == nil {
				t.Fatalf("object %d at depth %d is nil", i, d)
			}
			if obj.Type() != levelType {
				t.Errorf("object %d at depth %d has type %v, level says %v",
					i, d, obj.Type(), levelType)
			}
			if obj.Depth() != d {
				t.Errorf("object %d at depth %d reports depth %d", i, d, obj.Depth())
			}
		}
	}
}

func TestTopologyCloseIdempotent(t *testing.T) {
	topo, err := hwloc.NewTopology()
	if err != nil {
		t.Fatalf("NewTopology: %v", err)
	}
	if err := topo.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := topo.Close(); !errors.Is(err, hwloc.ErrTopologyClosed) {
		t.Fatalf("second Close = %v, want ErrTopologyClosed", err)
	}
	if err := topo.Load(); !errors.Is(err, hwloc.ErrTopologyClosed) {
		t.Fatalf("Load after Close = %v, want ErrTopologyClosed", err)
	}
}

func TestTopologyFlagsRoundTrip(t *testing.T) {
	topo, err := hwloc.NewTopology()
	if err != nil {
		t.Fatalf("NewTopology: %v", err)
	}
	defer func() {
		_ = topo.Close()
	}()

	if flags := topo.Flags(); flags != nil {
		t.Fatalf("fresh topology flags = %v, want none", flags)
	}

	want := []hwloc.TopologyFlag{hwloc.FlagIncludeDisallowed, hwloc.FlagIsThisSystem}
	if err := topo.SetFlags(want...); err != nil {
		t.Fatalf("SetFlags: %v", err)
	}

	got := topo.Flags()
	if len(got) != len(want) {
		t.Fatalf("Flags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Flags() = %v, want %v", got, want)
		}
	}
}

func TestDepthForType(t *testing.T) {
	topo := loadTopology(t)

	puDepth, err := topo.DepthForType(hwloc.PU)
	if err != nil {
		t.Fatalf("DepthForType(PU): %v", err)
	}
	if puDepth != topo.Depth()-1 {
		t.Errorf("PU depth = %d, want bottom level %d", puDepth, topo.Depth()-1)
	}
	if n := topo.NumObjectsAtDepth(puDepth); n == 0 {
		t.Error("no PUs detected")
	}

	// NUMA nodes live at a virtual depth in the main tree's terms.
	_, err = topo.DepthForType(hwloc.NUMANode)
	var de hwloc.DepthError
	if errors.As(err, &de) {
		if de != hwloc.DepthNUMANode {
			t.Errorf("NUMANode depth error = %v, want DepthNUMANode", de)
		}
		if !de.Virtual() {
			t.Error("DepthNUMANode is not virtual")
		}
		if n := topo.NumObjectsAtDepth(int(de)); n == 0 {
			t.Error("no NUMA nodes at virtual depth")
		}
	} else if err != nil {
		t.Fatalf("DepthForType(NUMANode): %v", err)
	}

	// A type absent from any real machine.
	_, err = topo.DepthForType(hwloc.Misc)
	if !errors.As(err, &de) || de != hwloc.DepthMisc {
		t.Errorf("DepthForType(Misc) = %v, want DepthMisc", err)
	}
}

func TestObjectAccessors(t *testing.T) {
	topo := loadTopology(t)

	root := topo.ObjectAtDepth(0, 0)
	if root.LogicalIndex() != 0 {
		t.Errorf("root logical index = %d, want 0", root.LogicalIndex())
	}
	if root.Arity() == 0 {
		t.Fatal("machine root has no children")
	}
	children := root.Children()
	if uint(len(children)) != root.Arity() {
		t.Fatalf("Children() returned %d, arity is %d", len(children), root.Arity())
	}
	for _, child := range children {
		if child.Parent() == nil {
			t.Error("child has nil parent")
		}
	}
	if root.Child(root.Arity()) != nil {
		t.Error("out-of-range Child is not nil")
	}

	cpuset := root.CPUSet()
	if cpuset == nil {
		t.Fatal("machine root has no cpuset")
	}
	if cpuset.IsZero() {
		t.Error("machine cpuset is empty")
	}
	// Borrowed bitmaps survive Close without affecting the topology.
	if err := cpuset.Close(); err != nil {
		t.Fatalf("Close on borrowed cpuset: %v", err)
	}
	if root.CPUSet().IsZero() {
		t.Error("machine cpuset emptied by borrowed Close")
	}

	if s := root.TypeString(false); s == "" {
		t.Error("TypeString is empty")
	}
}

func TestSupport(t *testing.T) {
	topo := loadTopology(t)

	sup := topo.Support()
	if !sup.Discovery.PU {
		t.Error("PU discovery unsupported on a loaded real topology")
	}
}

func TestAPIVersion(t *testing.T) {
	major, _, _ := hwloc.APIVersion()
	if major < 2 {
		t.Errorf("native API major version = %d, want >= 2", major)
	}
	if hwloc.APIVersionString() == "0.0.0" {
		t.Error("APIVersionString reports zero version with native bindings built")
	}
}
