package levels

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is a map wrapped with a title and free-form metadata.
type YAMLLevel struct {
	Name     string            `yaml:"name"`
	Map      string            `yaml:"map"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a level in the YAML format. The name field overrides
// the file name when set.
func ParseYAML(name string, data []byte) (*Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("%s: yaml unmarshal: %w", name, err)
	}

	lvl, err := parseRows(name, strings.Fields(yl.Map))
	if err != nil {
		return nil, err
	}
	if yl.Name != "" {
		lvl.Name = yl.Name
	}
	lvl.Metadata = yl.Metadata
	return lvl, nil
}
