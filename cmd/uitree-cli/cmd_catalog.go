package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uitree/pkg/catalog"
)

var catalogFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the component whitelist",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "catalog", "", "custom catalog file (.yaml/.yml or OpenAPI .json)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	reg := catalog.Default()
	if catalogFile != "" {
		loaded, err := loadCatalog(catalogFile)
		if err != nil {
			return err
		}
		reg = loaded
	}

	fmt.Printf("%d component types\n\n", reg.Len())
	for _, name := range reg.Types() {
		schema, _ := reg.Lookup(name)
		line := fmt.Sprintf("%-14s %-9s", schema.Type, schema.Category)
		var traits []string
		if required := schema.RequiredProps(); len(required) > 0 {
			traits = append(traits, "required: "+strings.Join(required, ", "))
		}
		if schema.SupportsChildren {
			traits = append(traits, "children")
		}
		if schema.SupportsActions {
			traits = append(traits, "actions")
		}
		if len(traits) > 0 {
			line += " (" + strings.Join(traits, "; ") + ")"
		}
		fmt.Println(line)
		if schema.Description != "" {
			fmt.Printf("               %s\n", schema.Description)
		}
	}
	return nil
}
