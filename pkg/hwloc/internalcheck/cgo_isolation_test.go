package internalcheck

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The package allowed to import "C". Everything else goes through it.
const bindingsPkg = "github.com/numalab/hwloc-go/internal/bindings"

func TestCgoIsolatedToBindings(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/numalab/hwloc-go/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		if pkg.PkgPath == bindingsPkg {
			continue
		}
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				if strings.Trim(imp.Path.Value, `"`) != "C" {
					continue
				}
				pos := pkg.Fset.Position(imp.Pos())
				findings = append(findings,
					fmt.Sprintf("%s: package %s imports \"C\" outside internal/bindings", pos, pkg.PkgPath))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation violation:\n%s", strings.Join(findings, "\n"))
	}
}
