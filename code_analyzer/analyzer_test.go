package code_analyzer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// Both or neither source set is a contract violation, reported before any
// work is attempted.
func TestAnalyze_InvalidRequest(t *testing.T) {
	analyzer := NewCodeAnalyzer(Options{})

	_, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = analyzer.Analyze(context.Background(), models.AnalysisRequest{
		RepoURL:   "https://github.com/example/repo",
		LocalPath: "/tmp/somewhere",
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

// Full pipeline over a local tree: collection, extraction, dependencies,
// summary and root path.
func TestAnalyze_LocalTree(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "app.py", "import os\nfrom utils import helper\n\n\nclass App:\n    def start(self):\n        pass\n\n\ndef main(argv):\n    pass\n")
	writeTestFile(t, root, "utils.py", "def helper(value):\n    return value\n")
	// Default include patterns anchor at the path start, so only root-level
	// files match them.
	writeTestFile(t, root, "index.js", "import React from 'react';\n\nfunction mount(el) {}\n")

	analyzer := NewCodeAnalyzer(Options{})
	result, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{LocalPath: root})
	require.NoError(t, err)

	assert.Equal(t, []string{"app.py", "index.js", "utils.py"}, result.Files)
	assert.Equal(t, root, result.RootPath)

	assert.Contains(t, result.Structure.Classes, "app.py::App")
	assert.Contains(t, result.Structure.Functions, "app.py::main")
	assert.Contains(t, result.Structure.Functions, "utils.py::helper")

	assert.Equal(t, []string{"os", "utils"}, result.Dependencies["app.py"])
	assert.Equal(t, []string{"react"}, result.Dependencies["index.js"])

	assert.Contains(t, result.Summary, "- 3 files analyzed")
	assert.Contains(t, result.Summary, "- 1 classes")

	graph := analyzer.BuildKnowledgeGraph(result.Structure, result.Dependencies)

	// app.py depends on "utils", which resolves to utils.py.
	assert.Contains(t, graph.Edges, models.KnowledgeGraphEdge{
		Source:       "file:app.py",
		Target:       "file:utils.py",
		Relationship: models.RelationshipImports,
	})
}

// A file exceeding the size ceiling is absent from every output
// collection.
func TestAnalyze_OversizedFileAbsentEverywhere(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "small.py", "x = 1\n")
	writeTestFile(t, root, "big.py", string(make([]byte, 4096)))

	analyzer := NewCodeAnalyzer(Options{})
	result, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{
		LocalPath:   root,
		MaxFileSize: 1024,
	})
	require.NoError(t, err)

	assert.NotContains(t, result.Files, "big.py")
	assert.NotContains(t, result.FileContents, "big.py")
	assert.NotContains(t, result.Structure.Modules, "big.py")
	assert.NotContains(t, result.Dependencies, "big.py")
}

// An empty tree yields empty collections, an empty knowledge graph and a
// summary reporting zero files.
func TestAnalyze_EmptyTree(t *testing.T) {
	root := t.TempDir()

	analyzer := NewCodeAnalyzer(Options{})
	result, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{LocalPath: root})
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Contains(t, result.Summary, "0 files analyzed")

	graph := analyzer.BuildKnowledgeGraph(result.Structure, result.Dependencies)
	assert.Empty(t, graph.Nodes)
	assert.Empty(t, graph.Edges)
}

// The result round-trips through its JSON encoding without loss.
func TestAnalyze_ResultJSONRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "app.py", "import os\n\n\ndef main():\n    pass\n")

	analyzer := NewCodeAnalyzer(Options{})
	result, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{LocalPath: root})
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded models.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, result.Files, decoded.Files)
	assert.Equal(t, result.FileContents, decoded.FileContents)
	assert.Equal(t, result.Dependencies, decoded.Dependencies)
	assert.Equal(t, result.Summary, decoded.Summary)
	assert.Equal(t, result.Structure.Classes, decoded.Structure.Classes)
	assert.Equal(t, result.Structure.Functions, decoded.Structure.Functions)
}

// A second run with caching enabled serves the stored result.
func TestAnalyze_CachedRun(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "app.py", "x = 1\n")

	analyzer := NewCodeAnalyzer(Options{EnableCache: true, CacheDir: t.TempDir()})

	first, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{LocalPath: root})
	require.NoError(t, err)

	second, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{LocalPath: root})
	require.NoError(t, err)

	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.Summary, second.Summary)
}
