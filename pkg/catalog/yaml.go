package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlDocument mirrors the on-disk catalog definition format:
//
//	components:
//	  - type: StatCard
//	    category: display
//	    supportsChildren: false
//	    props:
//	      title: {required: true, kind: string, default: ""}
//	      value: {kind: number, default: 0}
type yamlDocument struct {
	Components []Schema `yaml:"components"`
}

// LoadYAML reads catalog entries from a YAML definition stream and registers
// them on top of the built-in set. Entries may override built-ins.
func LoadYAML(r io.Reader) (*Registry, error) {
	reg := Default()
	if err := MergeYAML(reg, r); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadYAMLFile is LoadYAML for a file path.
func LoadYAMLFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// MergeYAML decodes catalog entries from r and registers them on reg.
func MergeYAML(reg *Registry, r io.Reader) error {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("catalog: decode yaml: %w", err)
	}
	if len(doc.Components) == 0 {
		return fmt.Errorf("catalog: yaml document declares no components")
	}
	for _, schema := range doc.Components {
		if err := validateKinds(schema); err != nil {
			return err
		}
		if err := reg.Register(schema); err != nil {
			return fmt.Errorf("catalog: register %q: %w", schema.Type, err)
		}
	}
	return nil
}

func validateKinds(schema Schema) error {
	for name, spec := range schema.Props {
		switch spec.Kind {
		case KindString, KindNumber, KindBoolean, KindArray, KindObject, "":
		default:
			return fmt.Errorf("catalog: %s.%s: unknown prop kind %q", schema.Type, name, spec.Kind)
		}
	}
	return nil
}
