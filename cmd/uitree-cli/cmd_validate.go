package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	uitree "github.com/goliatone/go-uitree"
	"github.com/goliatone/go-uitree/pkg/orchestrator"
	"github.com/goliatone/go-uitree/pkg/tree"
)

var validateOutput string

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate and repair an existing UI tree document",
	Long: `Reads a {root, elements} tree as JSON from the given file or standard
input, runs the three validation rounds against it, and prints the repaired
tree together with the validation result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "output file (stdout if empty)")
	validateCmd.Flags().BoolVar(&formatStrict, "strict", false, "report degradable issues as errors")
	validateCmd.Flags().BoolVar(&formatNoFallback, "no-fallback", false, "disable whole-tree Markdown fallback")
}

// validateReport is the validate command's output envelope.
type validateReport struct {
	Status   tree.Status  `json:"status"`
	Errors   []tree.Issue `json:"errors"`
	Warnings []tree.Issue `json:"warnings"`
	Tree     *tree.UITree `json:"tree,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	var draft tree.UITree
	if err := json.Unmarshal(input, &draft); err != nil {
		return fmt.Errorf("decode tree: %w", err)
	}

	options, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	repaired, result, err := uitree.New(options...).ValidateTree(&draft)
	if err != nil && !errors.Is(err, orchestrator.ErrNoUsableTree) {
		return err
	}

	report := validateReport{Tree: repaired}
	if result != nil {
		report.Status = result.Status
		report.Errors = result.Errors
		report.Warnings = result.Warnings
	}
	encoded, encodeErr := json.MarshalIndent(report, "", "  ")
	if encodeErr != nil {
		return fmt.Errorf("encode report: %w", encodeErr)
	}
	if writeErr := writeOutput(encoded, validateOutput); writeErr != nil {
		return writeErr
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "validation failed: no usable tree")
		return err
	}
	return nil
}
