package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// The report carries the summary, a dependency table row per file with
// dependencies, and one line per graph edge.
func TestGenerateAnalysisMarkdown(t *testing.T) {
	index := models.NewStructureIndex()
	index.Modules["app.py"] = models.FileStructure{FilePath: "app.py"}

	result := &models.AnalysisResult{
		Files:        []string{"app.py", "utils.py"},
		Structure:    index,
		Dependencies: models.DependencyGraph{"app.py": {"os", "utils"}, "utils.py": {}},
		Summary:      "Codebase Structure:\n- 2 files analyzed",
		RootPath:     "/tmp/project",
	}
	graph := &models.KnowledgeGraph{
		Nodes: []models.KnowledgeGraphNode{
			{ID: "file:app.py", Type: models.NodeTypeFile},
			{ID: "file:utils.py", Type: models.NodeTypeFile},
		},
		Edges: []models.KnowledgeGraphEdge{
			{Source: "file:app.py", Target: "file:utils.py", Relationship: models.RelationshipImports},
		},
	}

	report := GenerateAnalysisMarkdown(result, graph)

	assert.Contains(t, report, "# Codebase Analysis")
	assert.Contains(t, report, "Root: `/tmp/project`")
	assert.Contains(t, report, "- 2 files analyzed")
	assert.Contains(t, report, "| `app.py` | os, utils |")
	assert.NotContains(t, report, "| `utils.py` |")
	assert.Contains(t, report, "2 nodes, 1 edges")
	assert.Contains(t, report, "- `file:app.py` --imports--> `file:utils.py`")
}

// A nil graph omits the knowledge graph section entirely.
func TestGenerateAnalysisMarkdown_NoGraph(t *testing.T) {
	result := &models.AnalysisResult{
		Structure:    models.NewStructureIndex(),
		Dependencies: models.DependencyGraph{},
		Summary:      "Codebase Structure:\n- 0 files analyzed",
	}

	report := GenerateAnalysisMarkdown(result, nil)

	assert.NotContains(t, report, "## Knowledge Graph")
}
