package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// GenerateAnalysisMarkdown renders an analysis result and its knowledge
// graph as a markdown report: the structure digest, a dependency table and
// the graph edge list.
func GenerateAnalysisMarkdown(result *models.AnalysisResult, graph *models.KnowledgeGraph) string {
	var builder strings.Builder

	builder.WriteString("# Codebase Analysis\n\n")
	builder.WriteString(fmt.Sprintf("Root: `%s`\n\n", result.RootPath))

	builder.WriteString("## Summary\n\n```\n")
	builder.WriteString(result.Summary)
	builder.WriteString("\n```\n\n")

	builder.WriteString("## Dependencies\n\n")
	builder.WriteString("| File | Depends on |\n|------|------------|\n")
	filePaths := make([]string, 0, len(result.Dependencies))
	for filePath := range result.Dependencies {
		filePaths = append(filePaths, filePath)
	}
	sort.Strings(filePaths)
	for _, filePath := range filePaths {
		deps := result.Dependencies[filePath]
		if len(deps) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("| `%s` | %s |\n", filePath, strings.Join(deps, ", ")))
	}
	builder.WriteString("\n")

	if graph != nil {
		builder.WriteString("## Knowledge Graph\n\n")
		builder.WriteString(fmt.Sprintf("%d nodes, %d edges\n\n", len(graph.Nodes), len(graph.Edges)))
		for _, edge := range graph.Edges {
			builder.WriteString(fmt.Sprintf("- `%s` --%s--> `%s`\n", edge.Source, edge.Relationship, edge.Target))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// RenderAndPrintMarkdown prints markdown content to stdout with syntax
// highlighting.
func RenderAndPrintMarkdown(content string, theme string) error {
	return quick.Highlight(os.Stdout, content, "markdown", "terminal256", theme)
}
