package code_analyzer

import (
	"path/filepath"
	"strings"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// Language families recognized by the structural extractor.
const (
	LanguagePython     = "python"
	LanguageECMAScript = "ecmascript"
	LanguageUnknown    = ""
)

// DetectLanguage returns the language family for a file path, keyed by
// extension. Unknown extensions map to LanguageUnknown.
func DetectLanguage(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".py":
		return LanguagePython
	case ".js", ".ts", ".jsx", ".tsx":
		return LanguageECMAScript
	default:
		return LanguageUnknown
	}
}

// ExtractStructure produces the structure record for one file. The second
// return value reports whether the file contributes to the structure index:
// false for unsupported languages and for Python files that fail to parse.
// A skipped file still appears in the raw file list, it just carries no
// structural facts.
func ExtractStructure(record models.FileRecord) (models.FileStructure, bool) {
	switch DetectLanguage(record.RelativePath) {
	case LanguagePython:
		return extractPythonStructure(record.RelativePath, []byte(record.Content))
	case LanguageECMAScript:
		return extractECMAScriptStructure(record.RelativePath, record.Content), true
	default:
		return emptyStructure(record.RelativePath), false
	}
}

// BuildStructureIndex runs the extractor over every collected file and
// aggregates the results. Only Python files contribute entries to the
// global Classes/Functions maps, keyed "{file_path}::{name}"; ECMAScript
// structure stays in the per-file record.
func BuildStructureIndex(records []models.FileRecord) *models.StructureIndex {
	index := models.NewStructureIndex()

	for _, record := range records {
		language := DetectLanguage(record.RelativePath)
		structure, ok := ExtractStructure(record)
		if !ok {
			continue
		}

		index.Modules[record.RelativePath] = structure

		if language != LanguagePython {
			continue
		}

		for className, classInfo := range structure.Classes {
			index.Classes[record.RelativePath+"::"+className] = classInfo
		}
		for funcName, funcInfo := range structure.Functions {
			index.Functions[record.RelativePath+"::"+funcName] = funcInfo
		}
		if len(structure.Imports) > 0 {
			index.Imports[record.RelativePath] = structure.Imports
		}
	}

	return index
}

func emptyStructure(filePath string) models.FileStructure {
	return models.FileStructure{
		FilePath:  filePath,
		Classes:   make(map[string]models.ClassInfo),
		Functions: make(map[string]models.FunctionInfo),
	}
}
