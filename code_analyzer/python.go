package code_analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// extractPythonStructure parses a Python file into its structure record
// using tree-sitter. A parse failure is non-fatal: the second return value
// is false and the file is skipped from structural extraction entirely.
func extractPythonStructure(filePath string, source []byte) (models.FileStructure, bool) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree := parser.Parse(nil, source)
	root := tree.RootNode()
	if root == nil || root.HasError() {
		return emptyStructure(filePath), false
	}

	structure := emptyStructure(filePath)

	// Imports and classes are collected at any nesting depth; top-level
	// functions only from the module body.
	walkTree(root, func(node *sitter.Node) {
		switch node.Type() {
		case "import_statement":
			structure.Imports = append(structure.Imports, pythonPlainImports(node, source)...)
		case "import_from_statement":
			structure.Imports = append(structure.Imports, pythonFromImports(node, source)...)
		case "class_definition":
			info := pythonClassInfo(node, source)
			structure.Classes[info.Name] = info
		}
	})

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := unwrapDecorated(root.NamedChild(i))
		if child.Type() != "function_definition" {
			continue
		}
		info := pythonFunctionInfo(child, source)
		structure.Functions[info.Name] = info
	}

	return structure, true
}

// walkTree visits every node in the syntax tree, depth-first.
func walkTree(node *sitter.Node, visit func(*sitter.Node)) {
	visit(node)
	for i := 0; i < int(node.NamedChildCount()); i++ {
		walkTree(node.NamedChild(i), visit)
	}
}

// unwrapDecorated steps through a decorated_definition wrapper to the
// declaration it decorates.
func unwrapDecorated(node *sitter.Node) *sitter.Node {
	if node.Type() == "decorated_definition" {
		if definition := node.ChildByFieldName("definition"); definition != nil {
			return definition
		}
	}
	return node
}

// pythonPlainImports handles "import a.b, c as d".
func pythonPlainImports(node *sitter.Node, source []byte) []models.ImportRef {
	var refs []models.ImportRef
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			refs = append(refs, models.ImportRef{Module: child.Content(source)})
		case "aliased_import":
			ref := models.ImportRef{}
			if name := child.ChildByFieldName("name"); name != nil {
				ref.Module = name.Content(source)
			}
			if alias := child.ChildByFieldName("alias"); alias != nil {
				ref.Alias = alias.Content(source)
			}
			refs = append(refs, ref)
		}
	}
	return refs
}

// pythonFromImports handles "from m import a as b, c". Relative modules
// keep their leading dots (".utils"); the dependency grapher excludes them.
func pythonFromImports(node *sitter.Node, source []byte) []models.ImportRef {
	var module string
	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode != nil {
		module = moduleNode.Content(source)
	}

	var refs []models.ImportRef
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if moduleNode != nil && child.StartByte() == moduleNode.StartByte() && child.EndByte() == moduleNode.EndByte() {
			continue
		}
		switch child.Type() {
		case "dotted_name":
			refs = append(refs, models.ImportRef{Module: module, Name: child.Content(source)})
		case "aliased_import":
			ref := models.ImportRef{Module: module}
			if name := child.ChildByFieldName("name"); name != nil {
				ref.Name = name.Content(source)
			}
			if alias := child.ChildByFieldName("alias"); alias != nil {
				ref.Alias = alias.Content(source)
			}
			refs = append(refs, ref)
		case "wildcard_import":
			refs = append(refs, models.ImportRef{Module: module, Name: "*"})
		}
	}
	return refs
}

// pythonClassInfo records a class declaration: its ordered method names
// (direct function definitions in the class body) and its base-class
// references flattened to dotted-name strings.
func pythonClassInfo(node *sitter.Node, source []byte) models.ClassInfo {
	info := models.ClassInfo{
		Line: int(node.StartPoint().Row) + 1,
	}
	if name := node.ChildByFieldName("name"); name != nil {
		info.Name = name.Content(source)
	}

	if superclasses := node.ChildByFieldName("superclasses"); superclasses != nil {
		for i := 0; i < int(superclasses.NamedChildCount()); i++ {
			base := superclasses.NamedChild(i)
			switch base.Type() {
			case "identifier", "attribute", "dotted_name":
				info.Bases = append(info.Bases, base.Content(source))
			case "keyword_argument", "comment":
				// metaclass=... and friends are not base classes
			default:
				// Unresolvable base expression (subscripts etc.); keep the
				// slot so the base count is preserved.
				info.Bases = append(info.Bases, "")
			}
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			member := unwrapDecorated(body.NamedChild(i))
			if member.Type() != "function_definition" {
				continue
			}
			if name := member.ChildByFieldName("name"); name != nil {
				info.Methods = append(info.Methods, name.Content(source))
			}
		}
	}

	return info
}

// pythonFunctionInfo records a top-level function with its ordered
// parameter names.
func pythonFunctionInfo(node *sitter.Node, source []byte) models.FunctionInfo {
	info := models.FunctionInfo{
		Line: int(node.StartPoint().Row) + 1,
	}
	if name := node.ChildByFieldName("name"); name != nil {
		info.Name = name.Content(source)
	}

	if parameters := node.ChildByFieldName("parameters"); parameters != nil {
		for i := 0; i < int(parameters.NamedChildCount()); i++ {
			if arg := pythonParameterName(parameters.NamedChild(i), source); arg != "" {
				info.Args = append(info.Args, arg)
			}
		}
	}

	return info
}

// pythonParameterName extracts the bare name from a parameter node,
// covering plain, typed, defaulted and splat forms.
func pythonParameterName(node *sitter.Node, source []byte) string {
	switch node.Type() {
	case "identifier":
		return node.Content(source)
	case "typed_parameter", "list_splat_pattern", "dictionary_splat_pattern":
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "identifier" {
				return child.Content(source)
			}
		}
	case "default_parameter", "typed_default_parameter":
		if name := node.ChildByFieldName("name"); name != nil {
			return name.Content(source)
		}
	}
	return ""
}
