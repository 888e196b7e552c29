// Package validation enforces the module's import direction: internal
// packages are reachable from the owl facade, the commands and other
// internal packages, never from the public model packages.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath     = "biopaxcore"
	internalPrefix = modulePath + "/internal"
)

// Violation reports a forbidden import edge.
type Violation struct {
	Package string
	Import  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s imports %s", v.Package, v.Import)
}

// allowedImporters are path prefixes permitted to import internal
// packages. Everything else under pkg/ must go through the owl facade.
var allowedImporters = []string{
	internalPrefix,
	modulePath + "/pkg/owl",
	modulePath + "/cmd",
}

// IsInternalImport reports whether importPath is one of this module's
// internal packages.
func IsInternalImport(importPath string) bool {
	return importPath == internalPrefix || strings.HasPrefix(importPath, internalPrefix+"/")
}

// ImporterAllowed reports whether a package at pkgPath may import
// internal packages.
func ImporterAllowed(pkgPath string) bool {
	for _, prefix := range allowedImporters {
		if pkgPath == prefix || strings.HasPrefix(pkgPath, prefix+"/") {
			return true
		}
	}
	return false
}

// CheckImports scans loaded packages for forbidden internal imports and
// returns the sorted violations.
func CheckImports(pkgs []*packages.Package) []Violation {
	seen := make(map[Violation]struct{})
	for _, pkg := range pkgs {
		if ImporterAllowed(pkg.PkgPath) {
			continue
		}
		for importPath := range pkg.Imports {
			if IsInternalImport(importPath) {
				seen[Violation{Package: pkg.PkgPath, Import: importPath}] = struct{}{}
			}
		}
	}
	violations := make([]Violation, 0, len(seen))
	for v := range seen {
		violations = append(violations, v)
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Package != violations[j].Package {
			return violations[i].Package < violations[j].Package
		}
		return violations[i].Import < violations[j].Import
	})
	return violations
}

// LoadAndCheck loads every package in the module rooted at dir and runs
// CheckImports over the result.
func LoadAndCheck(dir string) ([]Violation, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports, Dir: dir, Tests: true}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	return CheckImports(pkgs), nil
}
