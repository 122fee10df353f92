package models

// AnalysisRequest describes one codebase analysis run. Exactly one of
// RepoURL or LocalPath must be set.
type AnalysisRequest struct {
	RepoURL     string   `json:"repo_url,omitempty"`
	LocalPath   string   `json:"local_path,omitempty"`
	Include     []string `json:"include,omitempty"`
	Exclude     []string `json:"exclude,omitempty"`
	MaxFileSize int64    `json:"max_file_size,omitempty"`
}

// FileRecord holds the path and content of one collected file.
type FileRecord struct {
	RelativePath string `json:"relative_path"`
	Content      string `json:"content"`
	Size         int64  `json:"size"`
}

// ImportRef is a single import found in a source file.
type ImportRef struct {
	Module string `json:"module"`
	Name   string `json:"name,omitempty"`
	Alias  string `json:"alias,omitempty"`
}

// ClassInfo describes a class declaration.
type ClassInfo struct {
	Name    string   `json:"name"`
	Methods []string `json:"methods"`
	Bases   []string `json:"bases"`
	Line    int      `json:"line"`
}

// FunctionInfo describes a top-level function declaration.
type FunctionInfo struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
	Line int      `json:"line"`
}

// FileStructure is the parsed structure of a single file.
type FileStructure struct {
	FilePath  string                  `json:"file_path"`
	Classes   map[string]ClassInfo    `json:"classes"`
	Functions map[string]FunctionInfo `json:"functions"`
	Imports   []ImportRef             `json:"imports"`
}

// StructureIndex aggregates the parsed structure of all analyzed files.
// Classes and Functions are keyed by "{file_path}::{name}".
type StructureIndex struct {
	Modules   map[string]FileStructure `json:"modules"`
	Classes   map[string]ClassInfo     `json:"classes"`
	Functions map[string]FunctionInfo  `json:"functions"`
	Imports   map[string][]ImportRef   `json:"imports"`
}

// NewStructureIndex returns an empty index with all maps initialized.
func NewStructureIndex() *StructureIndex {
	return &StructureIndex{
		Modules:   make(map[string]FileStructure),
		Classes:   make(map[string]ClassInfo),
		Functions: make(map[string]FunctionInfo),
		Imports:   make(map[string][]ImportRef),
	}
}

// DependencyGraph maps each analyzed file to the external module names it
// depends on. Dependency lists are deduplicated and sorted.
type DependencyGraph map[string][]string

// AnalysisResult is the complete output of one analysis run.
type AnalysisResult struct {
	Files        []string          `json:"files"`
	FileContents map[string]string `json:"file_contents"`
	Structure    *StructureIndex   `json:"structure"`
	Dependencies DependencyGraph   `json:"dependencies"`
	Summary      string            `json:"summary"`
	RootPath     string            `json:"root_path"`
}
