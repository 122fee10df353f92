package code_analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

const pythonSample = `import os
import numpy as np
from collections import OrderedDict as OD
from .utils import helper


class Base:
    def __init__(self):
        pass

    def run(self, job):
        pass


class Child(Base):
    def stop(self):
        pass


class Qualified(abc.ABC):
    pass


def main(argv, verbose=False):
    helper(argv)
`

// Language detection is keyed by extension.
func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, LanguagePython, DetectLanguage("src/app.py"))
	assert.Equal(t, LanguageECMAScript, DetectLanguage("web/index.js"))
	assert.Equal(t, LanguageECMAScript, DetectLanguage("web/App.tsx"))
	assert.Equal(t, LanguageUnknown, DetectLanguage("README.md"))
}

// Python extraction records imports with names and aliases.
func TestExtractPython_Imports(t *testing.T) {
	structure, ok := extractPythonStructure("app.py", []byte(pythonSample))
	require.True(t, ok)

	require.Len(t, structure.Imports, 4)
	assert.Equal(t, models.ImportRef{Module: "os"}, structure.Imports[0])
	assert.Equal(t, models.ImportRef{Module: "numpy", Alias: "np"}, structure.Imports[1])
	assert.Equal(t, models.ImportRef{Module: "collections", Name: "OrderedDict", Alias: "OD"}, structure.Imports[2])
	assert.Equal(t, models.ImportRef{Module: ".utils", Name: "helper"}, structure.Imports[3])
}

// Python extraction records classes with ordered methods and symbolic
// base-class references.
func TestExtractPython_Classes(t *testing.T) {
	structure, ok := extractPythonStructure("app.py", []byte(pythonSample))
	require.True(t, ok)

	require.Len(t, structure.Classes, 3)

	base := structure.Classes["Base"]
	assert.Equal(t, "Base", base.Name)
	assert.Equal(t, []string{"__init__", "run"}, base.Methods)
	assert.Empty(t, base.Bases)
	assert.Equal(t, 7, base.Line)

	child := structure.Classes["Child"]
	assert.Equal(t, []string{"Base"}, child.Bases)
	assert.Equal(t, []string{"stop"}, child.Methods)

	// Dotted base references are flattened to their source text.
	qualified := structure.Classes["Qualified"]
	assert.Equal(t, []string{"abc.ABC"}, qualified.Bases)
}

// Only top-level functions are recorded; methods are not.
func TestExtractPython_TopLevelFunctions(t *testing.T) {
	structure, ok := extractPythonStructure("app.py", []byte(pythonSample))
	require.True(t, ok)

	require.Len(t, structure.Functions, 1)
	main := structure.Functions["main"]
	assert.Equal(t, []string{"argv", "verbose"}, main.Args)
	assert.Equal(t, 24, main.Line)
}

// A parse failure skips the file from structural extraction entirely.
func TestExtractPython_ParseFailure(t *testing.T) {
	_, ok := extractPythonStructure("broken.py", []byte("def broken(:\n"))
	assert.False(t, ok)
}

// ECMAScript structure is recovered via pattern search over raw text.
func TestExtractECMAScript(t *testing.T) {
	content := strings.Join([]string{
		`import React, { useState } from 'react';`,
		`import { helper } from './local';`,
		``,
		`class App extends Component {`,
		`  render() { return null; }`,
		`}`,
		``,
		`export async function fetchData(url) {`,
		`  return fetch(url);`,
		`}`,
		``,
		`const handleClick = async (event) => {`,
		`  console.log(event);`,
		`};`,
	}, "\n")

	structure := extractECMAScriptStructure("app.jsx", content)

	require.Len(t, structure.Imports, 2)
	assert.Equal(t, "react", structure.Imports[0].Module)
	assert.Equal(t, "./local", structure.Imports[1].Module)

	require.Contains(t, structure.Classes, "App")
	assert.Equal(t, []string{"Component"}, structure.Classes["App"].Bases)

	assert.Contains(t, structure.Functions, "fetchData")
	assert.Contains(t, structure.Functions, "handleClick")
}

// Unsupported files produce an empty record and stay out of the index.
func TestExtractStructure_Unsupported(t *testing.T) {
	structure, ok := ExtractStructure(models.FileRecord{RelativePath: "notes.txt", Content: "class NotCode:"})
	assert.False(t, ok)
	assert.Empty(t, structure.Classes)
	assert.Empty(t, structure.Functions)
	assert.Empty(t, structure.Imports)
}

// Every qualified key in the global maps has a file_path prefix present in
// the modules map, and ECMAScript files contribute per-file structure only.
func TestBuildStructureIndex_Invariants(t *testing.T) {
	records := []models.FileRecord{
		{RelativePath: "app.py", Content: pythonSample},
		{RelativePath: "web/app.js", Content: `class Widget {}` + "\n" + `function mount(el) {}`},
	}

	index := BuildStructureIndex(records)

	assert.Contains(t, index.Modules, "app.py")
	assert.Contains(t, index.Modules, "web/app.js")

	for key := range index.Classes {
		filePath, _, ok := splitQualifiedKey(key)
		require.True(t, ok)
		assert.Contains(t, index.Modules, filePath)
	}
	for key := range index.Functions {
		filePath, _, ok := splitQualifiedKey(key)
		require.True(t, ok)
		assert.Contains(t, index.Modules, filePath)
	}

	// ECMAScript classes stay out of the global maps.
	assert.NotContains(t, index.Classes, "web/app.js::Widget")
	assert.Contains(t, index.Modules["web/app.js"].Classes, "Widget")
}
