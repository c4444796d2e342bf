// Command gen-visitor generates a visitor-pattern Walk function for
// internal/ast's node types.
//
// Usage:
//
//	go run cmd/gen-visitor/main.go
//
// The tool parses the struct definitions in internal/ast/*.go and
// generates internal/ast/visitor_generated.go with type-safe walk
// functions, one per node type that implements ast.Node.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// NodeInfo holds information about an AST node type.
type NodeInfo struct {
	Name   string
	Fields []*FieldInfo
}

// FieldInfo holds information about a field in a node.
type FieldInfo struct {
	Name            string
	Type            string
	IsSlice         bool
	IsNode          bool
	IsHelper        bool
	IsOrderedMap    bool
	IsSliceOfValues bool
}

// knownNodeTypes are the struct types that implement ast.Node (have
// TokenLiteral/String/Pos methods). Unlike the teacher's pkg/ast, this
// AST has no common embedded base struct to detect structurally, so the
// node set is listed explicitly.
var knownNodeTypes = map[string]bool{
	"Program": true, "Compound": true,
	"ClassDecl": true, "StructDecl": true, "EnumDecl": true, "TypeDecl": true,
	"IfExpr": true, "ElseExpr": true, "WhileExpr": true, "ForExpr": true,
	"LoopBlock": true, "SwitchStmt": true, "CaseStmt": true,
	"BreakStmt": true, "FallthroughStmt": true, "ContinueStmt": true, "Pass": true,
	"DeferStmt": true,
	"TypeRef":   true, "VarDecl": true, "Var": true, "Void": true,
	"FuncDecl": true, "ExternFuncDecl": true, "AnonymousFunc": true,
	"FuncCall": true, "MethodCall": true, "Return": true,
	"Constant": true, "Num": true, "Str": true, "Collection": true, "HashMap": true,
	"BinOp": true, "UnaryOp": true, "Range": true,
	"CollectionAccess": true, "DotAccess": true,
	"Assign": true, "OpAssign": true, "IncrementAssign": true,
	"PrintStmt": true, "InputStmt": true,
}

// knownHelperTypes are structs that are not themselves Nodes but contain
// Node-typed fields worth walking into.
var knownHelperTypes = map[string]bool{
	"Param":        true,
	"HashMapEntry": true,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	astDir := "internal/ast"
	if len(os.Args) > 1 {
		astDir = os.Args[1]
	}

	nodes, err := parseASTFiles(astDir)
	if err != nil {
		return fmt.Errorf("parsing AST files: %w", err)
	}

	code, err := generateVisitorCode(nodes)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	formatted, err := format.Source(code)
	if err != nil {
		fmt.Println(string(code))
		return fmt.Errorf("formatting code: %w", err)
	}

	outputFile := filepath.Join(astDir, "visitor_generated.go")
	if err := os.WriteFile(outputFile, formatted, 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	fmt.Printf("Generated %s (%d bytes)\n", outputFile, len(formatted))
	fmt.Printf("Processed %d node types\n", len(nodes))
	return nil
}

func parseASTFiles(dir string) ([]*NodeInfo, error) {
	fset := token.NewFileSet()

	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, "_generated.go")
	}, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*NodeInfo)

	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			ast.Inspect(file, func(n ast.Node) bool {
				typeSpec, ok := n.(*ast.TypeSpec)
				if !ok {
					return true
				}
				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					return true
				}

				name := typeSpec.Name.Name
				if !knownNodeTypes[name] && !knownHelperTypes[name] {
					return true
				}

				nodes[name] = &NodeInfo{Name: name, Fields: extractFields(structType)}
				return true
			})
		}
	}

	var result []*NodeInfo
	for _, node := range nodes {
		result = append(result, node)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func extractFields(structType *ast.StructType) []*FieldInfo {
	var fields []*FieldInfo

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			// Program embeds Compound; its fields are walked via the
			// embedded Compound's own walk function, not repeated here.
			continue
		}

		typeStr := typeToString(field.Type)

		for _, name := range field.Names {
			fieldName := name.Name
			if !ast.IsExported(fieldName) {
				continue
			}

			isOrderedMap := strings.HasPrefix(typeStr, "*OrderedMap[")
			isSlice := strings.HasPrefix(typeStr, "[]")

			elemType := typeStr
			isSliceOfValues := false
			if isSlice {
				elemType = strings.TrimPrefix(typeStr, "[]")
				if strings.HasPrefix(elemType, "*") {
					elemType = strings.TrimPrefix(elemType, "*")
				} else {
					isSliceOfValues = true
				}
			} else {
				elemType = strings.TrimPrefix(elemType, "*")
			}

			isNode := knownNodeTypes[elemType] || elemType == "Expression" || elemType == "Statement"
			isHelper := knownHelperTypes[elemType]

			if !isNode && !isHelper && !isOrderedMap {
				continue
			}

			fields = append(fields, &FieldInfo{
				Name: fieldName, Type: typeStr,
				IsSlice: isSlice, IsNode: isNode, IsHelper: isHelper,
				IsOrderedMap: isOrderedMap, IsSliceOfValues: isSliceOfValues,
			})
		}
	}

	return fields
}

func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		return "[]" + typeToString(t.Elt)
	case *ast.IndexListExpr:
		// OrderedMap[K, V]
		parts := make([]string, len(t.Indices))
		for i, idx := range t.Indices {
			parts[i] = typeToString(idx)
		}
		return typeToString(t.X) + "[" + strings.Join(parts, ", ") + "]"
	case *ast.IndexExpr:
		return typeToString(t.X) + "[" + typeToString(t.Index) + "]"
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	default:
		return ""
	}
}

// generateVisitorCode generates the complete visitor code: a type-switch
// driven Walk plus one walkX function per node/helper type that has
// Node-typed fields.
func generateVisitorCode(nodes []*NodeInfo) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`// Code generated by cmd/gen-visitor/main.go. DO NOT EDIT.

package ast

// Walk traverses an AST in depth-first order, starting at node. It calls
// v.Visit(node) for each node encountered; if Visit returns nil, walking
// stops there, otherwise Walk recurses into node's children with the
// returned Visitor.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkCompound(&n.Compound, v)
`)

	for _, node := range nodes {
		if node.Name == "Program" || knownHelperTypes[node.Name] {
			continue
		}
		fmt.Fprintf(&buf, "\tcase *%s:\n\t\twalk%s(n, v)\n", node.Name, node.Name)
	}

	buf.WriteString("\t}\n}\n\n")

	for _, node := range nodes {
		if node.Name == "Program" {
			continue
		}
		generateWalkFunction(&buf, node)
	}

	return buf.Bytes(), nil
}

func generateWalkFunction(buf *bytes.Buffer, node *NodeInfo) {
	fmt.Fprintf(buf, "func walk%s(n *%s, v Visitor) {\n", node.Name, node.Name)

	if len(node.Fields) == 0 {
		buf.WriteString("\t_ = n\n\t_ = v\n")
	}

	for _, field := range node.Fields {
		switch {
		case field.IsOrderedMap:
			// *OrderedMap[string, Expression] or *OrderedMap[string, *TypeRef]
			fmt.Fprintf(buf, "\tn.%s.Range(func(_ string, val %s) bool {\n", field.Name, orderedMapValueType(field.Type))
			buf.WriteString("\t\tif val != nil {\n\t\t\tWalk(v, val)\n\t\t}\n\t\treturn true\n\t})\n")
		case field.IsSlice && field.IsHelper:
			addr := "&"
			if strings.HasPrefix(field.Type, "[]*") {
				addr = ""
			}
			fmt.Fprintf(buf, "\tfor i := range n.%s {\n\t\twalk%s(%sn.%s[i], v)\n\t}\n",
				field.Name, strings.TrimPrefix(strings.TrimPrefix(field.Type, "[]"), "*"), addr, field.Name)
		case field.IsSlice && field.IsSliceOfValues:
			fmt.Fprintf(buf, "\tfor _, item := range n.%s {\n\t\tif item != nil {\n\t\t\tWalk(v, item)\n\t\t}\n\t}\n", field.Name)
		case field.IsSlice:
			fmt.Fprintf(buf, "\tfor _, item := range n.%s {\n\t\tif item != nil {\n\t\t\tWalk(v, item)\n\t\t}\n\t}\n", field.Name)
		case field.IsHelper && strings.HasPrefix(field.Type, "*"):
			fmt.Fprintf(buf, "\tif n.%s != nil {\n\t\twalk%s(n.%s, v)\n\t}\n", field.Name, strings.TrimPrefix(field.Type, "*"), field.Name)
		case field.IsHelper:
			fmt.Fprintf(buf, "\twalk%s(n.%s, v)\n", strings.TrimPrefix(field.Type, "*"), field.Name)
		default:
			fmt.Fprintf(buf, "\tif n.%s != nil {\n\t\tWalk(v, n.%s)\n\t}\n", field.Name, field.Name)
		}
	}

	buf.WriteString("}\n\n")
}

func orderedMapValueType(t string) string {
	// *OrderedMap[string, V] -> V
	inner := strings.TrimSuffix(strings.TrimPrefix(t, "*OrderedMap["), "]")
	parts := strings.SplitN(inner, ", ", 2)
	if len(parts) != 2 {
		return "any"
	}
	return parts[1]
}
