package plan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/taskgrid/internal/ctxlog"
	"github.com/vk/taskgrid/internal/fsutil"
	"github.com/vk/taskgrid/internal/task"
)

// planExtensions are the file suffixes the loader recognizes when walking a
// plan directory.
var planExtensions = []string{".hcl", ".yaml", ".yml"}

// taskSpec is the format-agnostic shape of one task declaration, shared by
// the HCL and YAML front ends.
type taskSpec struct {
	Name      string
	Reads     []string
	Writes    []string
	DependsOn []string
	Sleep     string
	Echo      string
}

// Loader reads plan files and produces the engine's inputs.
type Loader struct{}

// NewLoader creates a new plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every plan file reachable from the given paths (files or
// directories) and returns the declared task list in declaration order
// together with the explicit precedence mapping. The mapping is total by
// construction: every declared task gets an entry, empty when it has no
// depends_on. Identity and ordering validation is left to the scheduler.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*task.Task, map[string][]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Plan loader started.", "path_count", len(paths))

	files, err := l.findPlanFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered plan files.", "count", len(files))
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no plan files found in %s", strings.Join(paths, ", "))
	}

	var specs []*taskSpec
	for _, file := range files {
		var fileSpecs []*taskSpec
		var parseErr error
		switch filepath.Ext(file) {
		case ".hcl":
			fileSpecs, parseErr = parseHCLFile(file)
		case ".yaml", ".yml":
			fileSpecs, parseErr = parseYAMLFile(file)
		default:
			parseErr = fmt.Errorf("unsupported plan file extension: %s", file)
		}
		if parseErr != nil {
			return nil, nil, parseErr
		}
		specs = append(specs, fileSpecs...)
	}

	tasks := make([]*task.Task, 0, len(specs))
	precedences := make(map[string][]string, len(specs))
	for _, spec := range specs {
		action, err := buildAction(spec)
		if err != nil {
			return nil, nil, err
		}
		tasks = append(tasks, task.New(spec.Name, spec.Reads, spec.Writes, action))
		precedences[spec.Name] = append([]string(nil), spec.DependsOn...)
	}

	logger.Debug("Plan loading complete.", "task_count", len(tasks))
	return tasks, precedences, nil
}

// findPlanFiles resolves the given paths to a deduplicated flat list of
// plan files, walking directories recursively.
func (l *Loader) findPlanFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fsutil.FindFilesByExtension(path, planExtensions...)
			if err != nil {
				return nil, err
			}
		} else {
			found = []string{path}
		}

		for _, file := range found {
			if _, wasSeen := seen[file]; !wasSeen {
				allFiles = append(allFiles, file)
				seen[file] = struct{}{}
			}
		}
	}

	return allFiles, nil
}
