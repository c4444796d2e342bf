package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/lexer"
	"github.com/oxygen-lang/oxygenc/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpr    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Oxygen source code and display the AST",
	Long: `Parse Oxygen source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-ast to show the full tree
structure instead of the AST's String() form; combine with --verbose to
additionally pretty-print the raw Go value tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST tree structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case parseExpr != "":
		input = parseExpr
		filename = "<eval>"
	case len(args) > 0:
		filename = args[0]
		content, err := readSourceFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = content
	default:
		filename = "<stdin>"
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	lex, err := lexer.New(input)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	program, err := parser.Parse(lex, parser.WithFile(filename), parser.WithSource(input))
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
		if verbose {
			fmt.Println("---")
			pretty.Println(program)
		}
		return nil
	}

	fmt.Println(program.String())
	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	indentStr := ""
	for i := 0; i < indent; i++ {
		indentStr += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.Compound:
		fmt.Printf("%sCompound (%d statements)\n", indentStr, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.IfExpr:
		fmt.Printf("%sIfExpr (%d arms)\n", indentStr, len(n.Comparisons))
		for i, cmp := range n.Comparisons {
			fmt.Printf("%s  arm %d:\n", indentStr, i)
			dumpASTNode(cmp, indent+2)
			dumpASTNode(n.Blocks[i], indent+2)
		}
	case *ast.WhileExpr:
		fmt.Printf("%sWhileExpr\n", indentStr)
		dumpASTNode(n.Comparison, indent+1)
		dumpASTNode(n.Block, indent+1)
	case *ast.ForExpr:
		fmt.Printf("%sForExpr (%d elements)\n", indentStr, len(n.Elements))
		dumpASTNode(n.Iterator, indent+1)
		dumpASTNode(n.Block, indent+1)
	case *ast.BinOp:
		fmt.Printf("%sBinOp (%s)\n", indentStr, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryOp:
		fmt.Printf("%sUnaryOp (%s)\n", indentStr, n.Op)
		dumpASTNode(n.Expr, indent+1)
	case *ast.Assign:
		fmt.Printf("%sAssign (%s)\n", indentStr, n.Op)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.Num:
		fmt.Printf("%sNum: %v\n", indentStr, n.Value)
	case *ast.Str:
		fmt.Printf("%sStr: %q\n", indentStr, n.Value)
	case *ast.Constant:
		fmt.Printf("%sConstant: %s\n", indentStr, n.Name)
	case *ast.Var:
		fmt.Printf("%sVar: %s\n", indentStr, n.Name)
	case *ast.FuncDecl:
		fmt.Printf("%sFuncDecl: %s\n", indentStr, n.Name)
		dumpASTNode(n.Body, indent+1)
	case *ast.FuncCall:
		fmt.Printf("%sFuncCall: %s\n", indentStr, n.Name)
		for _, arg := range n.Arguments {
			dumpASTNode(arg, indent+1)
		}
	case nil:
		fmt.Printf("%s<nil>\n", indentStr)
	default:
		fmt.Printf("%s%T: %s\n", indentStr, node, node.String())
	}
}
