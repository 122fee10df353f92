package models

// Node types used in the knowledge graph.
const (
	NodeTypeFile     = "file"
	NodeTypeClass    = "class"
	NodeTypeFunction = "function"
	NodeTypeModule   = "module"
)

// Edge relationships used in the knowledge graph.
const (
	RelationshipContains = "contains"
	RelationshipInherits = "inherits"
	RelationshipImports  = "imports"
)

// KnowledgeGraphNode is a single entity in the knowledge graph.
type KnowledgeGraphNode struct {
	ID       string                 `json:"id"`
	Label    string                 `json:"label"`
	Type     string                 `json:"type"`
	FilePath string                 `json:"file_path,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// KnowledgeGraphEdge is a directed relationship between two nodes.
type KnowledgeGraphEdge struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	Relationship string `json:"relationship"`
}

// KnowledgeGraph is a typed entity/relationship graph over the files,
// classes and functions of an analyzed codebase.
type KnowledgeGraph struct {
	Nodes []KnowledgeGraphNode `json:"nodes"`
	Edges []KnowledgeGraphEdge `json:"edges"`
}
