// Package config loads layout profiles: YAML files bundling the root path
// a layout is materialized under with the layout map itself.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/treekit/treekit/tree"
)

// Profile describes a layout file.
type Profile struct {
	// Root is the base path the layout lives under. Environment variables
	// and "~" are expanded by local backends.
	Root string `yaml:"root" validate:"required"`

	// Separator joins ancestor keys in flattened path maps. Defaults to
	// tree.DefaultSeparator.
	Separator string `yaml:"separator"`

	// Layout is the nested directory/file description.
	Layout map[string]interface{} `yaml:"layout" validate:"required,min=1"`
}

var validate = validator.New()

// Load reads and validates a layout profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read profile %s", path)
	}

	return Parse(data)
}

// Parse decodes and validates a layout profile from YAML bytes.
func Parse(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, errors.WithMessage(err, "failed to parse profile")
	}

	if profile.Separator == "" {
		profile.Separator = tree.DefaultSeparator
	}

	if err := validate.Struct(&profile); err != nil {
		return nil, errors.WithMessage(err, "invalid profile")
	}

	return &profile, nil
}
