package code_analyzer

import (
	"fmt"
	"strings"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// summaryModuleLimit caps how many module paths the digest lists.
const summaryModuleLimit = 10

// ComposeSummary derives a short fixed-format digest of the structure:
// counts followed by up to ten module paths in sorted order, with a
// truncation note when more exist.
func ComposeSummary(structure *models.StructureIndex) string {
	var parts []string

	parts = append(parts, "Codebase Structure:")
	parts = append(parts, fmt.Sprintf("- %d files analyzed", len(structure.Modules)))
	parts = append(parts, fmt.Sprintf("- %d classes", len(structure.Classes)))
	parts = append(parts, fmt.Sprintf("- %d functions", len(structure.Functions)))

	if len(structure.Modules) > 0 {
		parts = append(parts, "\nMain Modules:")
		modulePaths := sortedKeys(structure.Modules)
		for i, filePath := range modulePaths {
			if i >= summaryModuleLimit {
				break
			}
			parts = append(parts, fmt.Sprintf("  - %s", filePath))
		}
		if len(modulePaths) > summaryModuleLimit {
			parts = append(parts, fmt.Sprintf("  ... and %d more", len(modulePaths)-summaryModuleLimit))
		}
	}

	return strings.Join(parts, "\n")
}
