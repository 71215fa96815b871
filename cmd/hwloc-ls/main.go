// Command hwloc-ls prints the machine topology as an indented tree, in
// the spirit of the native lstopo tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/numalab/hwloc-go/pkg/hwloc"
)

func main() {
	verbose := flag.Bool("verbose", false, "print verbose type and attribute strings")
	showVersion := flag.Bool("version", false, "print versions and exit")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{Name: "hwloc-ls"})

	if *showVersion {
		fmt.Printf("hwloc-ls %s (hwloc API %s)\n", hwloc.WrapperVersion(), hwloc.APIVersionString())
		return
	}

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

	root := topo.ObjectAtDepth(0, 0)
	if root == nil {
		logger.Error("topology has no root object")
		os.Exit(1)
	}
	printObject(root, 0, *verbose)
}

func printObject(obj *hwloc.Object, indent int, verbose bool) {
	line := obj.TypeString(verbose)
	if name := obj.Name(); name != "" {
		line += " \"" + name + "\""
	}
	if attrs := obj.AttrString(" ", verbose); attrs != "" {
		line += " (" + attrs + ")"
	}
	if obj.Type() == hwloc.Machine || obj.Type() == hwloc.NUMANode {
		if mem := obj.TotalMemory(); mem > 0 {
			line += " mem=" + humanize.IBytes(mem)
		}
	}
	if cpuset := obj.CPUSet(); cpuset != nil && !cpuset.IsZero() {
		line += " cpuset=" + cpuset.String()
	}
	fmt.Printf("%s%s\n", strings.Repeat("  ", indent), line)

	for _, child := range obj.Children() {
		printObject(child, indent+1, verbose)
	}
}
