package code_analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

func buildGraphFromRecords(records []models.FileRecord) models.DependencyGraph {
	return BuildDependencyGraph(records, BuildStructureIndex(records))
}

// Python imports are truncated to their first dot segment; relative
// imports reduce to an empty root and are excluded.
func TestBuildDependencyGraph_PythonRelativeImportExcluded(t *testing.T) {
	records := []models.FileRecord{
		{RelativePath: "a.py", Content: "import os\nfrom .utils import helper\n"},
	}

	graph := buildGraphFromRecords(records)

	require.Contains(t, graph, "a.py")
	assert.Equal(t, []string{"os"}, graph["a.py"])
}

// Dotted modules reduce to their root package, deduplicated and sorted.
func TestBuildDependencyGraph_PythonModuleRoots(t *testing.T) {
	records := []models.FileRecord{
		{RelativePath: "svc.py", Content: "import os.path\nimport os\nfrom collections import OrderedDict\nimport zlib\n"},
	}

	graph := buildGraphFromRecords(records)

	assert.Equal(t, []string{"collections", "os", "zlib"}, graph["svc.py"])
}

// ECMAScript relative imports are excluded; bare specifiers reduce to
// their first slash segment.
func TestBuildDependencyGraph_ECMAScript(t *testing.T) {
	records := []models.FileRecord{
		{RelativePath: "web/app.js", Content: "import React from 'react';\nimport { x } from '@scope/pkg/sub';\nimport { y } from './sibling';\nimport { z } from '../parent';\n"},
	}

	graph := buildGraphFromRecords(records)

	assert.Equal(t, []string{"@scope", "react"}, graph["web/app.js"])
}

// Every collected file is keyed, including files with no dependencies.
func TestBuildDependencyGraph_AllFilesKeyed(t *testing.T) {
	records := []models.FileRecord{
		{RelativePath: "empty.py", Content: "x = 1\n"},
		{RelativePath: "notes.txt", Content: "just text\n"},
	}

	graph := buildGraphFromRecords(records)

	require.Len(t, graph, 2)
	assert.Empty(t, graph["empty.py"])
	assert.Empty(t, graph["notes.txt"])
}
