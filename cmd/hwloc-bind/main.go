// Command hwloc-bind binds the current process (or thread) to a cpuset
// given in list format and optionally executes a command under that
// binding.
//
//	hwloc-bind -cpuset 0-3,8 -- ./worker --threads 4
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/go-hclog"

	"github.com/numalab/hwloc-go/pkg/hwloc"
	"github.com/numalab/hwloc-go/pkg/idlist"
)

func main() {
	// Thread binding targets the OS thread making the native call, and
	// the binding query and exec below must happen on that same thread.
	runtime.LockOSThread()

	cpus := flag.String("cpuset", "", "cpuset to bind to in list format, e.g. 0-3,8")
	thread := flag.Bool("thread", false, "bind only the current thread instead of the whole process")
	strict := flag.Bool("strict", false, "fail unless the exact binding can be enforced")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{Name: "hwloc-bind"})

	if !idlist.Valid(*cpus) {
		logger.Error("invalid or missing -cpuset", "cpuset", *cpus)
		os.Exit(2)
	}
	ids := idlist.Parse[uint](*cpus)

	topo, err := hwloc.NewTopology()
	if err != nil {
		logger.Error("topology init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = topo.Close()
	}()
	if err := topo.Load(); err != nil {
		logger.Error("topology load failed", "error", err)
		os.Exit(1)
	}

	set, err := hwloc.NewBitmap()
	if err != nil {
		logger.Error("bitmap alloc failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = set.Close()
	}()
	for _, id := range ids.Slice() {
		set.Set(id)
	}

	flags := hwloc.BindProcess
	if *thread {
		flags = hwloc.BindThread
	}
	if *strict {
		flags |= hwloc.BindStrict
	}

	if err := topo.SetCPUBind(set, flags); err != nil {
		logger.Error("binding failed", "cpuset", set.String(), "error", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		bound, err := topo.CPUBind(flags &^ hwloc.BindStrict)
		if err != nil {
			logger.Error("binding query failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			_ = bound.Close()
		}()
		fmt.Printf("bound to %s\n", bound)
		return
	}

	// The binding is inherited by whatever runs next in this process.
	if err := runCommand(args); err != nil {
		logger.Error("command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}
