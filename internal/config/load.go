package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/sconestudio/sconebuild/internal/ctxlog"
	"github.com/sconestudio/sconebuild/internal/workspace"
)

// hclToolchainFile represents the top-level structure of a toolchain
// override file for decoding.
type hclToolchainFile struct {
	Packages     *hclPackages     `hcl:"packages,block"`
	Dependencies []*hclDependency `hcl:"dependency,block"`
}

type hclPackages struct {
	Apt []string `hcl:"apt,optional"`
	Gem []string `hcl:"gem,optional"`
}

// hclDependency overrides fields of a built-in descriptor. cmake_flags is
// kept as a raw expression so it can be evaluated against the workspace
// variables after decoding.
type hclDependency struct {
	Name       string         `hcl:"name,label"`
	Source     string         `hcl:"source,optional"`
	Cache      *bool          `hcl:"cache,optional"`
	CMakeFlags hcl.Expression `hcl:"cmake_flags,optional"`
}

// Load returns the toolchain for a run: the built-in defaults, with the
// override file at path applied on top when path is non-empty.
func Load(ctx context.Context, path string, ws workspace.Workspace, goos string) (*Toolchain, error) {
	tc := Default(ws, goos)
	if path == "" {
		return tc, nil
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading toolchain overrides.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse toolchain file %s: %w", path, diags)
	}

	ectx := evalContext(ws, tc)
	var parsed hclToolchainFile
	if diags := gohcl.DecodeBody(file.Body, ectx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode toolchain file %s: %w", path, diags)
	}

	if parsed.Packages != nil {
		if parsed.Packages.Apt != nil {
			tc.Packages.Apt = parsed.Packages.Apt
		}
		if parsed.Packages.Gem != nil {
			tc.Packages.Gem = parsed.Packages.Gem
		}
	}

	seen := make(map[string]bool)
	for _, block := range parsed.Dependencies {
		if seen[block.Name] {
			return nil, fmt.Errorf("duplicate dependency %q in %s", block.Name, path)
		}
		seen[block.Name] = true

		dep, ok := tc.Dependency(block.Name)
		if !ok {
			return nil, fmt.Errorf("unknown dependency %q in %s (expected one of %v)", block.Name, path, tc.Names())
		}
		if block.Source != "" {
			dep.Source = block.Source
		}
		if block.Cache != nil {
			dep.CacheInstall = *block.Cache
		}
		flags, err := stringList(block.CMakeFlags, ectx)
		if err != nil {
			return nil, fmt.Errorf("invalid cmake_flags for dependency %q in %s: %w", block.Name, path, err)
		}
		if flags != nil {
			dep.CMakeFlags = flags
		}
		logger.Debug("Applied dependency override.", "dependency", block.Name)
	}

	return tc, nil
}

// evalContext exposes the workspace layout to override expressions:
// workspace.root, workspace.submodules, workspace.dependencies, and
// install.<dep> for every known dependency.
func evalContext(ws workspace.Workspace, tc *Toolchain) *hcl.EvalContext {
	install := make(map[string]cty.Value, len(tc.Dependencies))
	for _, dep := range tc.Dependencies {
		install[dep.Name] = cty.StringVal(ws.InstallDir(dep.Name))
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"workspace": cty.ObjectVal(map[string]cty.Value{
				"root":         cty.StringVal(ws.Root),
				"submodules":   cty.StringVal(ws.SubmodulesDir()),
				"dependencies": cty.StringVal(ws.DependenciesDir()),
			}),
			"install": cty.ObjectVal(install),
		},
	}
}

// stringList evaluates an expression to a list of strings. A nil or absent
// expression yields nil, which callers treat as "not overridden".
func stringList(expr hcl.Expression, ectx *hcl.EvalContext) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(ectx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("expected a list of strings, got %s", val.Type().FriendlyName())
	}
	out := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		elem, err := convert.Convert(elem, cty.String)
		if err != nil {
			return nil, fmt.Errorf("list element is not a string: %w", err)
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
