//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestGovernance_CoreCohesion verifies that exported identifiers in pkg/core
// are shared by more than one package. Single-use types belong with their
// only consumer.
func TestGovernance_CoreCohesion(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	coreDefs := make(map[types.Object]string)
	var corePkg *packages.Package
	for _, p := range pkgs {
		if p.PkgPath != modulePath+"/pkg/core" {
			continue
		}
		corePkg = p
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			if obj := scope.Lookup(name); obj.Exported() {
				coreDefs[obj] = name
			}
		}
		break
	}
	if corePkg == nil {
		t.Fatal("Could not find pkg/core")
	}

	usage := make(map[string]map[string]bool)
	for _, name := range coreDefs {
		usage[name] = make(map[string]bool)
	}
	for _, p := range pkgs {
		if p.PkgPath == corePkg.PkgPath || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if name, ok := coreDefs[obj]; ok {
				usage[name][strings.TrimPrefix(p.PkgPath, modulePath+"/")] = true
			}
		}
	}

	for name, importers := range usage {
		if cohesionAllowlist[name] {
			continue
		}
		switch len(importers) {
		case 0:
			t.Logf("unused core identifier: %s", name)
		case 1:
			for user := range importers {
				t.Errorf("core.%s is used only by %s; move it there", name, user)
			}
		}
	}
}

// cohesionAllowlist names core identifiers that may have a single consumer.
var cohesionAllowlist = map[string]bool{
	"LintConfig":  true, // decoded by the CLI config layer
	"RuleOptions": true,
}

// TestGovernance_NoCoreAliasesInPkg ensures public packages use core types
// directly instead of re-exporting them as aliases.
func TestGovernance_NoCoreAliasesInPkg(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	for _, p := range pkgs {
		if len(p.Errors) > 0 || p.PkgPath == modulePath+"/pkg/core" {
			continue
		}
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !tn.Exported() || !tn.IsAlias() {
				continue
			}
			named, ok := types.Unalias(tn.Type()).(*types.Named)
			if ok && named.Obj().Pkg() != nil && named.Obj().Pkg().Path() == modulePath+"/pkg/core" {
				t.Errorf("%s re-exports core.%s as %s", strings.TrimPrefix(p.PkgPath, modulePath+"/"), named.Obj().Name(), name)
			}
		}
	}
}
