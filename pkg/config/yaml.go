package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template is written by "asciistamp init".
const Template = `# asciistamp configuration
#
# The comment block and the insertion cadence are fixed; only the run
# settings below can be changed.

# File to annotate when no path is given on the command line.
target: src/App.jsx

# Print the insertions as a diff instead of rewriting the file.
dry_run: false

# Keep src/App.jsx.asciistamp.bak with the original content.
backup: false

# debug, info, warn or error.
log_level: info

# auto, always or never.
color: auto
`

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Unknown keys are rejected.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		// An empty document decodes to io.EOF; treat it as an empty config.
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return cfg, nil
}
