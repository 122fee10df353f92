package code_analyzer

import (
	"sort"
	"strings"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// BuildDependencyGraph reduces each file's extracted imports to module-root
// identifiers. Every collected file is keyed, including those with zero
// dependencies. Dependency lists are deduplicated and sorted.
//
// Python imports are truncated to their first dot-separated segment;
// relative imports (".utils") reduce to an empty root and are excluded.
// ECMAScript imports are truncated to their first slash-separated segment,
// with relative specifiers ("./x", "../y") excluded entirely: those
// reference sibling files already tracked as nodes, not external packages.
func BuildDependencyGraph(records []models.FileRecord, structure *models.StructureIndex) models.DependencyGraph {
	graph := make(models.DependencyGraph, len(records))

	for _, record := range records {
		seen := make(map[string]struct{})
		language := DetectLanguage(record.RelativePath)

		if fileStructure, ok := structure.Modules[record.RelativePath]; ok {
			for _, ref := range fileStructure.Imports {
				root := moduleRoot(ref.Module, language)
				if root == "" {
					continue
				}
				seen[root] = struct{}{}
			}
		}

		deps := make([]string, 0, len(seen))
		for dep := range seen {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		graph[record.RelativePath] = deps
	}

	return graph
}

// moduleRoot truncates a module identifier to its first path segment.
func moduleRoot(module, language string) string {
	switch language {
	case LanguagePython:
		return strings.Split(module, ".")[0]
	case LanguageECMAScript:
		if strings.HasPrefix(module, ".") {
			return ""
		}
		return strings.Split(module, "/")[0]
	default:
		return ""
	}
}
