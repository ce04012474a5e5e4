package main

import (
	"flag"
	"fmt"
	"os"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `minc - a small imperative language front end

Usage:
    minc <command> [arguments]

Commands:
    check <file>    Parse and analyze a .minc file, reporting diagnostics
    print <file>    Parse a .minc file and pretty-print it
    help            Show this help message

Examples:
    minc check examples/sort.minc
    minc print examples/sort.minc

Use "minc <command> -h" for more information about a command.
`)
}

// readSource reads a source file and NUL-terminates it as the lexer
// requires.
func readSource(filename string) ([]byte, error) {
	sourceBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return append(sourceBytes, '\x00'), nil
}

func checkCommand(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show verbose checking details")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minc check [-v] <file>\n")
		fmt.Fprintf(os.Stderr, "Parse and analyze a .minc file, reporting diagnostics\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)
	input, err := readSource(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		os.Exit(1)
	}

	l := NewLexer(input)
	l.NextToken()
	prog := ParseProgram(l)

	if l.Errors.HasErrors() {
		fmt.Fprintf(os.Stderr, "Syntax errors in %s:\n%s", filename, l.Errors.String())
		os.Exit(1)
	}

	// Name resolution must finish over the whole tree before type
	// checking starts; its diagnostics come first in the output.
	symbolTable := BuildSymbolTable(prog)
	typeErrors := CheckProgram(prog)

	if symbolTable.Errors.HasErrors() || typeErrors.HasErrors() {
		fmt.Fprint(os.Stderr, symbolTable.Errors.String())
		fmt.Fprint(os.Stderr, typeErrors.String())
		os.Exit(1)
	}

	fmt.Printf("%s: no errors found\n", filename)

	if *verbose {
		fmt.Print(UnparseProgram(prog))
	}
}

func printCommand(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: minc print <file>\n")
		fmt.Fprintf(os.Stderr, "Parse a .minc file and pretty-print it\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)
	input, err := readSource(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		os.Exit(1)
	}

	l := NewLexer(input)
	l.NextToken()
	prog := ParseProgram(l)

	if l.Errors.HasErrors() {
		fmt.Fprintf(os.Stderr, "Syntax errors in %s:\n%s", filename, l.Errors.String())
		os.Exit(1)
	}

	fmt.Print(UnparseProgram(prog))
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		checkCommand(args)
	case "print":
		printCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		showUsage()
		os.Exit(1)
	}
}
