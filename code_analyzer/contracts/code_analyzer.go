package contracts

import (
	"context"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// ICodeAnalyzer is the entry point of the codebase analysis pipeline.
type ICodeAnalyzer interface {
	Analyze(ctx context.Context, request models.AnalysisRequest) (*models.AnalysisResult, error)
	BuildKnowledgeGraph(structure *models.StructureIndex, dependencies models.DependencyGraph) *models.KnowledgeGraph
	GetCacheStats() (map[string]interface{}, error)
	ClearCache() error
}
