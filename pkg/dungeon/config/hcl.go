package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

var configSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "dungeon"},
	},
}

// LoadFile reads an HCL config file and returns clamped Params. Attributes
// absent from the file keep their default values.
func LoadFile(path string) (*Params, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source into Params. The filename is used for diagnostics
// only. Blocks other than `dungeon` are tolerated so the dungeon settings can
// live inside a larger game config.
func Parse(src []byte, filename string) (*Params, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	content, _, diags := file.Body.PartialContent(configSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to read %s: %w", filename, diags)
	}

	// Decoding into a pre-filled struct: attributes missing from the file
	// keep their default values.
	params := Defaults()
	for _, block := range content.Blocks {
		diags = gohcl.DecodeBody(block.Body, nil, params)
		if diags.HasErrors() {
			return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
		}
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.Clamp()
	return params, nil
}
