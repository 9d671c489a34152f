// Command gqlvisit runs the gqlvisit traversal engine from the command
// line: describe the node-kind registry, run a named built-in transform
// over a document tree, or serve the engine over MCP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/lang-tools/gqlvisit/ast"
	"github.com/lang-tools/gqlvisit/internal/mcpserver"
	"github.com/lang-tools/gqlvisit/internal/names"
	"github.com/lang-tools/gqlvisit/internal/transforms"
	"github.com/lang-tools/gqlvisit/visitor"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Println("gqlvisit v0.1.0")
	case "help", "-h", "--help":
		printUsage()
	case "describe":
		err = handleDescribe(args)
	case "visit":
		err = handleVisit(args)
	case "serve":
		err = handleServe(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `gqlvisit — a traversal engine for a GraphQL-like document tree.

Usage:
  gqlvisit describe                 list every node kind and its slots
  gqlvisit visit [flags] <file>     run a named transform over a document
  gqlvisit serve                    run the MCP server over stdio
  gqlvisit version
  gqlvisit help

Run "gqlvisit visit -h" for transform flags.`)
}

func handleDescribe(args []string) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: gqlvisit describe\n\nList every node kind the engine recognizes, its declared slots, and the registered transform names.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	kinds := make([]string, 0, len(ast.KindInfo))
	for k := range ast.KindInfo {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	for _, k := range kinds {
		desc := ast.KindInfo[ast.Kind(k)]
		fmt.Printf("%-28s %s\n", k, names.Spaced(k))
		for _, slot := range desc.Slots {
			marker := " "
			if slot.SlotKind == ast.SlotKindSequence {
				marker = "*"
			}
			fmt.Printf("  %s%s\n", marker, slot.Name)
		}
	}

	fmt.Println()
	fmt.Println("Transforms:")
	for _, name := range transforms.Names() {
		fmt.Printf("  %s\n", name)
	}

	return nil
}

type argList []string

func (a *argList) String() string { return strings.Join(*a, ",") }
func (a *argList) Set(v string) error {
	*a = append(*a, v)
	return nil
}

func handleVisit(args []string) error {
	fs := flag.NewFlagSet("visit", flag.ContinueOnError)
	transformName := fs.String("transform", "", "name of the built-in transform to run (see 'gqlvisit describe')")
	format := fs.String("format", "", "input/output encoding: json or yaml; inferred from the file extension if omitted")
	trace := fs.Bool("trace", false, "print an enter/leave trace to stderr")
	var transformArgs argList
	fs.Var(&transformArgs, "arg", "key=value argument for the transform; may be repeated")

	fs.Usage = func() {
		output := fs.Output()
		fmt.Fprintf(output, "Usage: gqlvisit visit [flags] <file>\n\n")
		fmt.Fprintf(output, "Run a named built-in transform over a document tree and print the edited tree.\n\n")
		fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("visit requires exactly one input file")
	}
	if *transformName == "" {
		return fmt.Errorf("-transform is required")
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	enc := strings.ToLower(*format)
	if enc == "" {
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			enc = "yaml"
		} else {
			enc = "json"
		}
	}

	var root ast.Node
	switch enc {
	case "json":
		root, err = ast.UnmarshalJSON(data)
	case "yaml":
		root, err = ast.UnmarshalYAML(data)
	default:
		return fmt.Errorf("unsupported format %q; expected json or yaml", enc)
	}
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	parsedArgs := make(map[string]string, len(transformArgs))
	for _, pair := range transformArgs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid -arg %q; expected key=value", pair)
		}
		parsedArgs[k] = v
	}

	v, err := transforms.Build(*transformName, parsedArgs)
	if err != nil {
		return err
	}

	var opts []visitor.Option
	if *trace {
		opts = append(opts, visitor.WithLogger(newStderrTraceLogger()))
	}

	edited, err := visitor.Visit(root, v, opts...)
	if err != nil {
		return err
	}

	var out []byte
	switch enc {
	case "json":
		out, err = ast.MarshalJSON(edited)
	case "yaml":
		out, err = ast.MarshalYAML(edited)
	}
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func handleServe([]string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
