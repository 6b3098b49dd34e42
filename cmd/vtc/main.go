package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"vtc-go/packages/compiler-core/src/ast"
	"vtc-go/packages/compiler-core/src/transforms"
	"vtc-go/packages/compiler-core/src/util"
)

// Exit code constants
const (
	exitInvalidArguments = 1
	exitIOError          = 2
	exitParseError       = 3
)

// globalsConfig is the YAML shape of an allow-list configuration file
type globalsConfig struct {
	// Replace drops the built-in allow-list instead of extending it
	Replace bool     `yaml:"replace"`
	Globals []string `yaml:"globals"`
}

func main() {
	var (
		prefix      string
		known       []string
		globalsFile string
		explain     bool
	)

	rootCmd := &cobra.Command{
		Use:   "vtc [expression]",
		Short: "Rewrite free identifiers in a template binding expression into context-qualified reads",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			source, err := readExpression(args)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading expression: %v\n", err)
				os.Exit(exitIOError)
			}
			if strings.TrimSpace(source) == "" {
				return fmt.Errorf("no expression given")
			}
			allowed, err := loadGlobals(globalsFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading globals config: %v\n", err)
				os.Exit(exitIOError)
			}
			return rewrite(source, prefix, known, allowed, explain)
		},
	}

	rootCmd.Flags().StringVar(&prefix, "prefix", transforms.DefaultPrefix, "Context prefix inserted before rewritten identifiers")
	rootCmd.Flags().StringSliceVar(&known, "known", nil, "Identifiers already bound by the template context")
	rootCmd.Flags().StringVar(&globalsFile, "globals", "", "YAML file configuring the global allow-list")
	rootCmd.Flags().BoolVar(&explain, "explain", false, "Print the literal/sub-expression breakdown instead of flat output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInvalidArguments)
	}
}

// readExpression takes the expression from the single positional argument,
// or from stdin when no argument is given
func readExpression(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// loadGlobals builds the allow-list from an optional YAML config file.
// A nil result means the built-in default applies unchanged.
func loadGlobals(path string) (map[string]bool, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg globalsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	allowed := map[string]bool{}
	if !cfg.Replace {
		allowed = transforms.DefaultAllowedGlobals()
	}
	for _, name := range cfg.Globals {
		allowed[name] = true
	}
	return allowed, nil
}

func rewrite(source, prefix string, known []string, allowed map[string]bool, explain bool) error {
	identifiers := map[string]bool{}
	for _, name := range known {
		identifiers[name] = true
	}

	var errs []*util.ParseError
	ctx := transforms.NewTransformContext(transforms.TransformOptions{
		Prefix:         prefix,
		Identifiers:    identifiers,
		AllowedGlobals: allowed,
		OnError: func(err *util.ParseError) {
			errs = append(errs, err)
		},
	})

	node := makeExpressionNode(source)
	transforms.ProcessExpression(node, ctx)

	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err.ContextualMessage())
		}
		os.Exit(exitParseError)
	}

	if explain {
		printChildren(node)
		return nil
	}
	fmt.Println(node.String())
	return nil
}

// makeExpressionNode builds an expression node whose span covers the whole
// input, tracking lines and columns through multiline text
func makeExpressionNode(source string) *ast.SimpleExpression {
	file := util.NewParseSourceFile(source, "<expression>")
	start := util.NewParseLocation(file, 0, 0, 0)
	span := util.NewParseSourceSpan(start, start.MoveBy(len(source)), nil)
	return ast.NewSimpleExpression(source, false, span)
}

// printChildren dumps the compound structure one child per line
func printChildren(node *ast.SimpleExpression) {
	if !node.IsCompound() {
		fmt.Printf("unchanged  %q\n", node.Content)
		return
	}
	for _, child := range node.Children {
		switch c := child.(type) {
		case ast.TextFragment:
			fmt.Printf("text  %q\n", string(c))
		case *ast.SimpleExpression:
			span := c.SourceSpan()
			fmt.Printf("expr  %q @%d..%d\n", c.Content, span.Start.Offset, span.End.Offset)
		}
	}
}
