package code_analyzer

import (
	"sort"
	"strings"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// BuildKnowledgeGraph assembles the entity/relationship graph from the
// structure index and the dependency graph. It is a pure function of its
// inputs: all maps are iterated in sorted key order, so the output is
// byte-identical across runs with equal input.
//
// Construction order is file nodes, class nodes (with contains/inherits
// edges), function nodes (with contains edges), then import edges. Edges
// are added only when both endpoints resolve; a failed lookup drops the
// edge silently.
func BuildKnowledgeGraph(structure *models.StructureIndex, dependencies models.DependencyGraph) *models.KnowledgeGraph {
	graph := &models.KnowledgeGraph{
		Nodes: []models.KnowledgeGraphNode{},
		Edges: []models.KnowledgeGraphEdge{},
	}
	seen := make(map[string]struct{})

	addNode := func(node models.KnowledgeGraphNode) bool {
		if _, dup := seen[node.ID]; dup {
			return false
		}
		seen[node.ID] = struct{}{}
		graph.Nodes = append(graph.Nodes, node)
		return true
	}
	hasNode := func(id string) bool {
		_, ok := seen[id]
		return ok
	}

	modulePaths := sortedKeys(structure.Modules)

	for _, filePath := range modulePaths {
		segments := strings.Split(filePath, "/")
		addNode(models.KnowledgeGraphNode{
			ID:       "file:" + filePath,
			Label:    segments[len(segments)-1],
			Type:     models.NodeTypeFile,
			FilePath: filePath,
			Metadata: map[string]interface{}{"path": filePath},
		})
	}

	for _, classKey := range sortedKeys(structure.Classes) {
		classInfo := structure.Classes[classKey]
		filePath, className, ok := splitQualifiedKey(classKey)
		if !ok {
			continue
		}
		nodeID := "class:" + classKey
		addNode(models.KnowledgeGraphNode{
			ID:       nodeID,
			Label:    className,
			Type:     models.NodeTypeClass,
			FilePath: filePath,
			Metadata: map[string]interface{}{
				"methods": classInfo.Methods,
				"bases":   classInfo.Bases,
			},
		})

		fileNodeID := "file:" + filePath
		if hasNode(fileNodeID) {
			graph.Edges = append(graph.Edges, models.KnowledgeGraphEdge{
				Source:       fileNodeID,
				Target:       nodeID,
				Relationship: models.RelationshipContains,
			})
		}

		// Base references resolve only against same-file class keys; a
		// cross-file or stdlib base never resolves under this key scheme.
		// That is a known resolution limit, not something to guess around.
		for _, base := range classInfo.Bases {
			baseNodeID := "class:" + filePath + "::" + base
			if hasNode(baseNodeID) {
				graph.Edges = append(graph.Edges, models.KnowledgeGraphEdge{
					Source:       nodeID,
					Target:       baseNodeID,
					Relationship: models.RelationshipInherits,
				})
			}
		}
	}

	for _, funcKey := range sortedKeys(structure.Functions) {
		funcInfo := structure.Functions[funcKey]
		filePath, funcName, ok := splitQualifiedKey(funcKey)
		if !ok {
			continue
		}
		nodeID := "function:" + funcKey
		addNode(models.KnowledgeGraphNode{
			ID:       nodeID,
			Label:    funcName,
			Type:     models.NodeTypeFunction,
			FilePath: filePath,
			Metadata: map[string]interface{}{"args": funcInfo.Args},
		})

		fileNodeID := "file:" + filePath
		if hasNode(fileNodeID) {
			graph.Edges = append(graph.Edges, models.KnowledgeGraphEdge{
				Source:       fileNodeID,
				Target:       nodeID,
				Relationship: models.RelationshipContains,
			})
		}
	}

	for _, filePath := range sortedKeys(dependencies) {
		fileNodeID := "file:" + filePath
		if !hasNode(fileNodeID) {
			continue
		}

		for _, dep := range dependencies[filePath] {
			// First-substring-match resolution over the sorted module
			// paths. Approximate on purpose: a dependency name that
			// happens to be a substring of an unrelated path wins.
			for _, otherFile := range modulePaths {
				if strings.Contains(otherFile, dep) || strings.HasSuffix(otherFile, "/"+dep+".py") {
					depNodeID := "file:" + otherFile
					if hasNode(depNodeID) {
						graph.Edges = append(graph.Edges, models.KnowledgeGraphEdge{
							Source:       fileNodeID,
							Target:       depNodeID,
							Relationship: models.RelationshipImports,
						})
					}
					break
				}
			}
		}
	}

	return graph
}

// splitQualifiedKey splits "{file_path}::{name}" into its parts.
func splitQualifiedKey(key string) (filePath, name string, ok bool) {
	idx := strings.LastIndex(key, "::")
	if idx < 0 {
		return "", "", false
	}
	return key[:idx], key[idx+2:], true
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
