package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	uitree "github.com/goliatone/go-uitree"
	"github.com/goliatone/go-uitree/pkg/catalog"
	"github.com/goliatone/go-uitree/pkg/orchestrator"
)

var (
	formatOutput     string
	formatStrict     bool
	formatNoFallback bool
	catalogPath      string
)

var formatCmd = &cobra.Command{
	Use:   "format [input-file]",
	Short: "Format an intent payload into a UI tree document",
	Long: `Reads an intent payload as JSON from the given file or standard input and
writes the final {intro, ui_tree} document to standard output or --output.

Exits non-zero when fallback is disabled and a fatal or strict issue was
encountered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&formatOutput, "output", "o", "", "output file (stdout if empty)")
	formatCmd.Flags().BoolVar(&formatStrict, "strict", false, "report degradable issues as errors")
	formatCmd.Flags().BoolVar(&formatNoFallback, "no-fallback", false, "disable whole-tree Markdown fallback")
	formatCmd.Flags().StringVar(&catalogPath, "catalog", "", "custom catalog file (.yaml/.yml or OpenAPI .json)")

	formatCmd.Flags().Lookup("strict").Usage += " (config: strict)"
	formatCmd.Flags().Lookup("no-fallback").Usage += " (config: no-fallback)"
}

func runFormat(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	var payload map[string]any
	if err := json.Unmarshal(input, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	options, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	result, err := uitree.New(options...).Format(payload)
	if err != nil {
		if result != nil {
			for _, issue := range result.Errors {
				fmt.Fprintf(os.Stderr, "error [%s] %s\n", issue.Code, issue.Message)
			}
		}
		return err
	}

	encoded, err := json.MarshalIndent(result.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return writeOutput(encoded, formatOutput)
}

// buildOptions assembles formatter options from flags, environment, and the
// config file. Explicit flags win.
func buildOptions(cmd *cobra.Command) ([]uitree.Option, error) {
	options := []uitree.Option{orchestrator.WithLogger(logger)}

	strict := formatStrict || (!cmd.Flags().Changed("strict") && viper.GetBool("strict"))
	noFallback := formatNoFallback || (!cmd.Flags().Changed("no-fallback") && viper.GetBool("no-fallback"))

	if strict {
		options = append(options, uitree.WithStrictValidation())
	}
	if noFallback {
		options = append(options, uitree.WithoutFallback())
	}

	path := catalogPath
	if path == "" {
		path = viper.GetString("catalog")
	}
	if path != "" {
		reg, err := loadCatalog(path)
		if err != nil {
			return nil, err
		}
		options = append(options, uitree.WithCatalog(reg))
		logger.Debug("loaded custom catalog", zap.String("file", path), zap.Int("types", reg.Len()))
	}
	return options, nil
}

// loadCatalog reads a custom catalog definition, picking the loader by file
// extension: YAML definitions or OpenAPI component schemas.
func loadCatalog(path string) (*catalog.Registry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return catalog.LoadYAMLFile(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		return catalog.LoadOpenAPI(context.Background(), data)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", args[0], err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func writeOutput(data []byte, path string) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	logger.Info("document written", zap.String("file", path), zap.Int("bytes", len(data)))
	return nil
}
