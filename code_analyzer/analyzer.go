package code_analyzer

import (
	"context"
	"fmt"
	"log"

	"github.com/codetutor-ai/codetutor/code_analyzer/contracts"
	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// DefaultMaxFileSize is the size ceiling applied when a request does not
// specify one (100 KB).
const DefaultMaxFileSize int64 = 100_000

// Default file patterns applied when a request leaves them empty.
var (
	DefaultIncludePatterns = []string{"*.py", "*.js", "*.ts", "*.jsx", "*.tsx"}
	DefaultExcludePatterns = []string{"**/node_modules/**", "**/__pycache__/**", "**/.git/**"}
)

// CodebaseAnalyzer runs the full analysis pipeline: acquire, collect,
// extract, graph, summarize.
type CodebaseAnalyzer struct {
	githubToken  string
	cacheManager *CacheManager
}

// Options configures a CodebaseAnalyzer.
type Options struct {
	// GithubToken, when set, is injected into remote clone URLs.
	GithubToken string
	// EnableCache turns on best-effort persistence of analysis results.
	EnableCache bool
	// CacheDir overrides the cache location; empty means ".cache".
	CacheDir string
}

// NewCodeAnalyzer initializes a new CodebaseAnalyzer. A cache
// initialization failure degrades to no caching rather than failing.
func NewCodeAnalyzer(opts Options) contracts.ICodeAnalyzer {
	var cacheManager *CacheManager
	if opts.EnableCache {
		var err error
		cacheManager, err = NewCacheManager(opts.CacheDir)
		if err != nil {
			log.Printf("Warning: failed to initialize cache manager: %v", err)
			cacheManager = nil
		}
	}

	return &CodebaseAnalyzer{
		githubToken:  opts.GithubToken,
		cacheManager: cacheManager,
	}
}

// Analyze runs one full analysis. The caller sees either a complete result
// or a single fatal error; per-file failures are absorbed along the way.
func (analyzer *CodebaseAnalyzer) Analyze(ctx context.Context, request models.AnalysisRequest) (*models.AnalysisResult, error) {
	if (request.RepoURL != "") == (request.LocalPath != "") {
		return nil, ErrInvalidRequest
	}

	sourceID := request.RepoURL
	if sourceID == "" {
		sourceID = request.LocalPath
	}

	if analyzer.cacheManager != nil {
		if cached, found := analyzer.cacheManager.GetAnalysisCache(sourceID); found {
			return cached, nil
		}
	}

	include := request.Include
	if len(include) == 0 {
		include = DefaultIncludePatterns
	}
	exclude := request.Exclude
	if len(exclude) == 0 {
		exclude = DefaultExcludePatterns
	}
	maxFileSize := request.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}

	root, cleanup, err := AcquireSource(ctx, request, analyzer.githubToken)
	if err != nil {
		return nil, err
	}
	// The clone directory is scoped to this run and must go away on every
	// exit path, including cancellation.
	defer cleanup()

	records, err := CollectFiles(ctx, root, include, exclude, maxFileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}

	structure := BuildStructureIndex(records)
	dependencies := BuildDependencyGraph(records, structure)
	summary := ComposeSummary(structure)

	files := make([]string, 0, len(records))
	fileContents := make(map[string]string, len(records))
	for _, record := range records {
		files = append(files, record.RelativePath)
		fileContents[record.RelativePath] = record.Content
	}

	result := &models.AnalysisResult{
		Files:        files,
		FileContents: fileContents,
		Structure:    structure,
		Dependencies: dependencies,
		Summary:      summary,
		RootPath:     root,
	}

	if analyzer.cacheManager != nil {
		if err := analyzer.cacheManager.SetAnalysisCache(sourceID, result); err != nil {
			log.Printf("Warning: failed to cache analysis result: %v", err)
		}
	}

	return result, nil
}

// BuildKnowledgeGraph exposes the graph builder on the analyzer contract.
func (analyzer *CodebaseAnalyzer) BuildKnowledgeGraph(structure *models.StructureIndex, dependencies models.DependencyGraph) *models.KnowledgeGraph {
	return BuildKnowledgeGraph(structure, dependencies)
}

// GetCacheStats returns cache statistics, or a disabled marker when
// caching is off.
func (analyzer *CodebaseAnalyzer) GetCacheStats() (map[string]interface{}, error) {
	if analyzer.cacheManager == nil {
		return map[string]interface{}{"cache_enabled": false}, nil
	}
	return analyzer.cacheManager.Stats(), nil
}

// ClearCache removes all cached analysis results.
func (analyzer *CodebaseAnalyzer) ClearCache() error {
	if analyzer.cacheManager == nil {
		return nil
	}
	return analyzer.cacheManager.Clear()
}
