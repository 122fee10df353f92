package code_analyzer

import (
	"regexp"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// The ECMAScript family has no syntax tree here; structure is recovered via
// pattern search over raw text. This is inherently approximate: unusual
// syntax produces false negatives, and methods are not distinguished from
// top-level functions. That imprecision is accepted, not a bug.
var (
	ecmaImportRegex = regexp.MustCompile(`import\s+(?:(?:\{[^}]*\}|\*\s+as\s+\w+|\w+)(?:\s*,\s*(?:\{[^}]*\}|\*\s+as\s+\w+|\w+))*\s+from\s+)?['"]([^'"]+)['"]`)
	ecmaClassRegex  = regexp.MustCompile(`class\s+(\w+)(?:\s+extends\s+(\w+))?`)
	ecmaFuncRegex   = regexp.MustCompile(`(?:export\s+)?(?:async\s+)?function\s+(\w+)|(?:export\s+)?(?:async\s+)?const\s+(\w+)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`)
)

// extractECMAScriptStructure recovers imports, class declarations and
// function declarations from a JavaScript/TypeScript file.
func extractECMAScriptStructure(filePath string, content string) models.FileStructure {
	structure := emptyStructure(filePath)

	for _, match := range ecmaImportRegex.FindAllStringSubmatch(content, -1) {
		structure.Imports = append(structure.Imports, models.ImportRef{Module: match[1]})
	}

	for _, match := range ecmaClassRegex.FindAllStringSubmatch(content, -1) {
		info := models.ClassInfo{Name: match[1]}
		if match[2] != "" {
			info.Bases = []string{match[2]}
		}
		structure.Classes[info.Name] = info
	}

	for _, match := range ecmaFuncRegex.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if name == "" {
			name = match[2]
		}
		if name == "" {
			continue
		}
		structure.Functions[name] = models.FunctionInfo{Name: name}
	}

	return structure
}
