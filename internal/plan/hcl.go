package plan

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclTask mirrors one `task "name" { ... }` block.
type hclTask struct {
	Name      string   `hcl:"name,label"`
	Reads     []string `hcl:"reads,optional"`
	Writes    []string `hcl:"writes,optional"`
	DependsOn []string `hcl:"depends_on,optional"`
	Sleep     string   `hcl:"sleep,optional"`
	Echo      string   `hcl:"echo,optional"`
}

// hclRoot is used to decode all top-level blocks from a plan file.
type hclRoot struct {
	Tasks  []*hclTask `hcl:"task,block"`
	Remain hcl.Body   `hcl:",remain"`
}

// parseHCLFile decodes every task block in one HCL plan file.
func parseHCLFile(path string) ([]*taskSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, buildEvalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", path, diags)
	}

	specs := make([]*taskSpec, 0, len(root.Tasks))
	for _, t := range root.Tasks {
		specs = append(specs, &taskSpec{
			Name:      t.Name,
			Reads:     t.Reads,
			Writes:    t.Writes,
			DependsOn: t.DependsOn,
			Sleep:     t.Sleep,
			Echo:      t.Echo,
		})
	}
	return specs, nil
}

// buildEvalContext exposes the process environment to plan expressions as
// the `env` object, so attributes may reference values like env.USER.
func buildEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
