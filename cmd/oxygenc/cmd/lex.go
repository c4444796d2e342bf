package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/oxygen-lang/oxygenc/internal/lexer"
	"github.com/oxygen-lang/oxygenc/internal/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	showPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an Oxygen file or expression",
	Long: `Tokenize (lex) an Oxygen program and print the resulting tokens.

If no file is given, source is read from stdin.

Examples:
  # Tokenize a script file
  oxygenc lex script.ox

  # Tokenize an inline expression
  oxygenc lex -e "x: int = 1 + 2"

  # Show token line numbers
  oxygenc lex --show-pos script.ox`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token line numbers")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := readSourceFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = content
	default:
		filename = "<stdin>"
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(data)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	lex, err := lexer.New(input)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	tokenCount := 0
	for {
		tok, err := lex.GetNextToken()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		tokenCount++
		printToken(tok)

		if tok.Kind == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
	}

	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-8s]", tok.Kind)

	switch {
	case tok.Kind == token.EOF:
		output += " EOF"
	case tok.Kind == token.NUMBER:
		output += fmt.Sprintf(" %v (%s)", tok.Value, tok.NumberKind)
	default:
		output += fmt.Sprintf(" %q", tok.Str())
	}

	if showPos {
		output += fmt.Sprintf(" @%d", tok.Line)
	}

	fmt.Println(output)
}
