package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlTask mirrors one entry of the top-level `tasks` list.
type yamlTask struct {
	Name      string   `yaml:"name"`
	Reads     []string `yaml:"reads"`
	Writes    []string `yaml:"writes"`
	DependsOn []string `yaml:"depends_on"`
	Sleep     string   `yaml:"sleep"`
	Echo      string   `yaml:"echo"`
}

type yamlRoot struct {
	Tasks []*yamlTask `yaml:"tasks"`
}

// parseYAMLFile decodes every task entry in one YAML plan file.
func parseYAMLFile(path string) ([]*taskSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	var root yamlRoot
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", path, err)
	}

	specs := make([]*taskSpec, 0, len(root.Tasks))
	for _, t := range root.Tasks {
		if t.Name == "" {
			return nil, fmt.Errorf("plan file %s: every task needs a name", path)
		}
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
