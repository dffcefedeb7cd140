package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Yun525/ERD/internal/analyzer"
	"github.com/Yun525/ERD/internal/types"

	"github.com/spf13/cobra"
)

// Exit statuses: pass, issues found, usage or environment error.
const (
	exitOK     = 0
	exitIssues = 1
	exitUsage  = 2
)

const passMessage = "PASS: No obvious syntax problems found by the lightweight validator."

var (
	errUsage       = errors.New("expected exactly one file argument")
	errIssuesFound = errors.New("validation issues found")
)

// notFoundError distinguishes a missing input file from other read failures
type notFoundError struct {
	path string
}

func (e *notFoundError) Error() string {
	return "File not found: " + e.path
}

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erdlint <file>",
		Short: "Lightweight syntax validator for ER diagram files",
		Long: `erdlint performs line-oriented syntax validation of ER diagram
files written in bigER notation. It flags likely mistakes (missing headers,
unbalanced braces, malformed declarations, non-standard cardinality tokens,
quoted identifiers) without building a full parse tree.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runValidate,
	}

	cmd.Flags().StringP("config", "c", "", "Path to configuration file (optional)")
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolP("verbose", "v", false, "Prefix each finding with its rule ID")

	return cmd
}

// Execute runs the root command and maps its outcome to an exit status
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()

	var notFound *notFoundError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errIssuesFound):
		return exitIssues
	case errors.Is(err, errUsage):
		fmt.Fprintln(stdout, "Usage: erdlint <path_to_erd_file>")
		return exitUsage
	case errors.As(err, &notFound):
		fmt.Fprintln(stdout, notFound.Error())
		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	configPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return &notFoundError{path: filePath}
		}
		return err
	}

	a, err := analyzer.NewAnalyzer(configPath)
	if err != nil {
		return err
	}

	issues, err := a.Analyze(filePath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if format == "json" {
		if err := printJSON(out, issues); err != nil {
			return err
		}
		if len(issues) > 0 {
			return errIssuesFound
		}
		return nil
	}

	if len(issues) == 0 {
		fmt.Fprintln(out, passMessage)
		return nil
	}

	fmt.Fprintln(out, "Found issues:")
	for _, issue := range issues {
		if verbose {
			fmt.Fprintf(out, "- [%s] %s\n", issue.RuleID, issue.Message)
		} else {
			fmt.Fprintf(out, "- %s\n", issue.Message)
		}
	}

	return errIssuesFound
}

// jsonIssue is the machine-readable shape of one finding
type jsonIssue struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Context string `json:"context,omitempty"`
}

type jsonReport struct {
	Issues []jsonIssue `json:"issues"`
}

func printJSON(out io.Writer, issues []types.Issue) error {
	report := jsonReport{Issues: []jsonIssue{}}
	for _, issue := range issues {
		report.Issues = append(report.Issues, jsonIssue{
			Rule:    issue.RuleID,
			Message: issue.Message,
			Line:    issue.Line,
			Context: issue.Context,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
